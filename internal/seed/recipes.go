package seed

import "github.com/teka-app/teka/internal/models"

// Recipes returns the seed recipe catalog, in storage order.
func Recipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:    "1",
			Title: "Vietnamese Rice Paper Rolls",
			Description: "Vietnamese Rice Paper Rolls (Gỏi cuốn) are fresh and vibrant finger foods made by wrapping shrimp, " +
				"vermicelli noodles, lettuce, mint, and bean sprouts in delicate rice paper. Served with a creamy peanut " +
				"dipping sauce, they're light, healthy, and full of texture—perfect as an appetizer or snack.",
			Ingredients: []string{
				"Rice paper sheets",
				"Cooked prawns (halved lengthwise)",
				"Vermicelli noodles (soaked)",
				"Lettuce leaves (soft types)",
				"Fresh mint leaves",
				"Bean sprouts",
				"Optional: crushed chili",
			},
			Instructions: "1. Prepare the sauce – Mix peanut butter, hoisin, vinegar, garlic, milk (or water), and chili paste. Microwave briefly and whisk until smooth.\n" +
				"2. Soak noodles – Cover vermicelli with warm water for about 2 minutes, then drain.\n" +
				"3. Prep fillings – Peel and halve the prawns, remove tough ribs from lettuce.\n" +
				"4. Wrap noodles and sprouts in a lettuce leaf to form a neat bundle.\n" +
				"5. Dip rice paper in warm water for 2 seconds and place smooth-side down.\n" +
				"6. Assemble rolls – Place prawns and mint, add the lettuce bundle, fold sides, and roll tightly from the bottom.\n" +
				"7. Serve immediately with peanut dipping sauce.",
			CookingTime:     20,
			Servings:        7,
			Category:        models.CategoryLunch,
			Rating:          4.8,
			NutritionalInfo: models.NutritionalInfo{Calories: 120, Protein: 8, Fat: 3, Carbs: 18},
			Comments:        []models.Comment{},
			CreatedBy:       "chef1",
			CreatedAt:       mustTime("2024-01-10T08:00:00Z"),
			ImageURL:        "/images/Card/Vietnamese-Rice-Paper-Rolls-7.png",
		},
		{
			ID:    "2",
			Title: "Vietnamese Caramel Ginger Chicken",
			Description: "Vietnamese Caramel Ginger Chicken is a bold, flavorful dish that combines the deep richness of " +
				"caramelized sugar with the warm, spicy fragrance of fresh ginger. Using just a handful of ingredients, " +
				"this dish delivers a perfect balance of sweet, salty, and savory notes, making it an ideal choice for a " +
				"quick yet impressive dinner.",
			Ingredients: []string{
				"Chicken thighs (cut into bite-sized pieces)",
				"Brown sugar (to form the base of the caramel sauce)",
				"Fish sauce (for deep umami flavor)",
				"Fresh ginger (finely sliced or julienned)",
				"Optional: chili and shallots (for extra aroma and heat)",
			},
			Instructions: "1. Marinate the chicken – Briefly coat chicken in fish sauce (and chili, if using).\n" +
				"2. In a large pan, melt brown sugar in oil until it turns into a golden caramel.\n" +
				"3. Add the chicken, ginger, and shallots to the caramel. Stir well to coat.\n" +
				"4. Add a splash of water, cover, and let simmer for about 10-12 minutes.\n" +
				"5. Once the sauce thickens and glazes the chicken, remove from heat.\n" +
				"6. Serve hot with steamed rice.",
			CookingTime:     12,
			Servings:        5,
			Category:        models.CategoryDinner,
			Rating:          4.6,
			NutritionalInfo: models.NutritionalInfo{Calories: 320, Protein: 28, Fat: 12, Carbs: 25},
			Comments:        []models.Comment{},
			CreatedBy:       "chef2",
			CreatedAt:       mustTime("2024-01-12T12:00:00Z"),
			ImageURL:        "/images/Card/Vietnamese-Ginger-Caramel-Chicken_6-close-up.png",
		},
		{
			ID:    "6",
			Title: "Pork Meatballs for Banh Mi",
			Description: "These Vietnamese pork meatballs are tender and juicy, poached (not fried) for an amazingly soft " +
				"texture. Perfectly seasoned with garlic, fish sauce, and a hint of sweetness, they're ideal stuffed into " +
				"a bánh mì or served over rice for a comforting meal.",
			Ingredients: []string{
				"Ground pork (soft and juicy when gently poached)",
				"Grated jicama (or apple/daikon) (adds moisture and texture)",
				"Garlic and ginger (bring depth and aroma)",
				"Fish sauce (provides classic Vietnamese umami flavor)",
				"Corn starch (helps bind the meatballs gently)",
				"Sugar and pepper (balance seasoning)",
				"Green onions (mild bite and freshness)",
			},
			Instructions: "1. Combine meatball ingredients in a bowl, mixing until just blended.\n" +
				"2. Roll into ~12 evenly sized meatballs (2 Tbsp each).\n" +
				"3. Stir cornflour into poaching liquid ingredients in a skillet.\n" +
				"4. Bring sauce to a gentle simmer, then add meatballs carefully.\n" +
				"5. Poach for about 7 minutes, turning occasionally, until just cooked.\n" +
				"6. Remove meatballs if not serving immediately to prevent overcooking.",
			CookingTime:     15,
			Servings:        4,
			Category:        models.CategoryLunch,
			Rating:          4.5,
			NutritionalInfo: models.NutritionalInfo{Calories: 280, Protein: 22, Fat: 18, Carbs: 8},
			Comments:        []models.Comment{},
			CreatedBy:       "chef6",
			CreatedAt:       mustTime("2024-01-18T11:00:00Z"),
			ImageURL:        "/images/Card/Pork-Banh-Mi-Meatballs_8.png",
		},
		{
			ID:          "4",
			Title:       "Crispy Pork Banh Mi",
			Description: "Here's my recipe for Crispy Pork Belly Banh Mi, possibly the best sandwich I've ever had in my life!",
			Ingredients: []string{
				"Pork belly (skin on)",
				"Vietnamese baguette",
				"Pickled vegetables (carrot, daikon)",
				"Fresh cilantro",
				"Cucumber slices",
				"Pâté (optional)",
				"Mayonnaise",
				"Soy sauce",
				"Fish sauce",
				"Sugar",
				"Garlic",
			},
			Instructions: "1. Score pork belly skin and season with salt.\n" +
				"2. Roast at high heat until skin is crispy.\n" +
				"3. Slice pork belly into thick pieces.\n" +
				"4. Split baguette and spread with pâté and mayo.\n" +
				"5. Layer with pork, pickled vegetables, cucumber, and cilantro.\n" +
				"6. Serve immediately while pork is still warm.",
			CookingTime:     45,
			Servings:        4,
			Category:        models.CategoryLunch,
			Rating:          4.7,
			NutritionalInfo: models.NutritionalInfo{Calories: 520, Protein: 25, Fat: 32, Carbs: 35},
			Comments:        []models.Comment{},
			CreatedBy:       "chef4",
			CreatedAt:       mustTime("2024-01-15T10:00:00Z"),
			ImageURL:        "/images/Card/banh mi.png",
		},
		{
			ID:    "5",
			Title: "Red Vietnamese Fried Rice",
			Description: "Red Vietnamese Fried Rice is a quick, flavorful twist on the traditional 'Cơm Dỏ' of Vietnam. " +
				"It's a vibrant fried rice dish made with day-old rice, tomato paste, garlic, ham, peas, and egg – all " +
				"stir-fried together in under 15 minutes. It's easy, hearty, and packed with umami flavor – perfect as a " +
				"main or side dish.",
			Ingredients: []string{
				"Cold cooked rice (best if it's a day old)",
				"Butter & garlic (the base for a rich, aromatic flavor)",
				"Ham, frozen peas, and eggs (provide protein, color, and heartiness)",
				"Tomato paste (gives the dish its signature red color and a sweet tang)",
				"Fish sauce, light soy sauce, and sugar (create a balance of savory, salty, and slightly sweet notes)",
			},
			Instructions: "1. Sauté garlic and ham – Melt butter, add garlic, then stir-fry ham and peas briefly.\n" +
				"2. Add rice and tomato paste – Stir in the cold rice and tomato paste, breaking up the clumps and coating evenly.\n" +
				"3. Season well – Add fish sauce, soy sauce, and sugar. Cook for 1-2 more minutes until the rice is evenly colored and slightly crispy.\n" +
				"4. Add egg – Push the rice to one side, add butter, then crack in the egg and lightly scramble. Mix it into the rice.\n" +
				"5. Serve hot – Once the egg is fully cooked and mixed, serve immediately.",
			CookingTime:     7,
			Servings:        4,
			Category:        models.CategoryDinner,
			Rating:          4.4,
			NutritionalInfo: models.NutritionalInfo{Calories: 380, Protein: 15, Fat: 12, Carbs: 55},
			Comments:        []models.Comment{},
			CreatedBy:       "chef5",
			CreatedAt:       mustTime("2024-01-20T16:00:00Z"),
			ImageURL:        "/images/Card/Red-Vietnamese-Fried-Rice_2.png",
		},
		{
			ID:    "3",
			Title: "Vietnamese Pho",
			Description: "Vietnamese Pho is a deeply comforting and aromatic noodle soup made with a clear beef broth " +
				"simmered for hours with spices, charred onion and ginger. Served with rice noodles and thin slices of " +
				"beef, it's light yet nourishing, and packed with rich umami flavor—perfect for both everyday meals and " +
				"special gatherings.",
			Ingredients: []string{
				"Beef bones",
				"Brisket",
				"Onion (charred)",
				"Ginger (charred)",
				"Star anise",
				"Cloves",
				"Cinnamon stick",
				"Coriander seeds",
				"Cardamom pods",
				"Fish sauce",
				"White sugar",
				"Flat rice noodles (pho noodles)",
				"Thinly sliced raw beef",
				"Cooked brisket (from broth)",
				"Bean sprouts",
				"Fresh herbs (Thai basil, cilantro)",
				"Lime wedges",
				"Hoisin sauce",
				"Sriracha (optional)",
			},
			Instructions: "1. Parboil bones and brisket – Boil briefly, drain and rinse to remove impurities.\n" +
				"2. Simmer broth – Refill pot with clean water. Add bones, brisket, charred onion, ginger, and toasted spices. Simmer uncovered for 3 hours.\n" +
				"3. Remove brisket – Once tender, take it out and set aside. Continue simmering broth 30-40 more minutes.\n" +
				"4. Strain broth – Discard solids. Season with fish sauce and sugar to taste.\n" +
				"5. Prepare noodles – Soak or boil noodles according to package instructions.\n" +
				"6. Assemble bowls – Add noodles, raw beef, sliced brisket, and herbs.\n" +
				"7. Serve – Ladle hot broth into each bowl to cook the beef, and serve with lime, hoisin, and sriracha on the side.",
			CookingTime:     240,
			Servings:        6,
			Category:        models.CategoryDinner,
			Rating:          4.9,
			NutritionalInfo: models.NutritionalInfo{Calories: 450, Protein: 35, Fat: 8, Carbs: 55},
			Comments:        []models.Comment{},
			CreatedBy:       "chef3",
			CreatedAt:       mustTime("2024-01-08T14:00:00Z"),
			ImageURL:        "/images/Card/Beef-Pho_6.png",
		},
		{
			ID:    "7",
			Title: "Bun Cha (Grilled Pork with Noodles)",
			Description: "Bun Cha is a beloved Hanoi street food featuring grilled pork patties and pork belly served with " +
				"rice vermicelli, fresh herbs, and a tangy dipping sauce. This dish perfectly represents the balance of " +
				"flavors that Vietnamese cuisine is famous for.",
			Ingredients: []string{
				"Ground pork",
				"Pork belly (sliced)",
				"Rice vermicelli noodles",
				"Fresh herbs (lettuce, mint, cilantro)",
				"Fish sauce",
				"Sugar",
				"Rice vinegar",
				"Garlic",
				"Chili",
				"Pickled vegetables",
			},
			Instructions: "1. Mix ground pork with seasonings and form into patties.\n" +
				"2. Marinate pork belly slices.\n" +
				"3. Grill both pork patties and belly until caramelized.\n" +
				"4. Prepare dipping sauce with fish sauce, sugar, vinegar, and chili.\n" +
				"5. Cook rice vermicelli according to package instructions.\n" +
				"6. Serve with fresh herbs and pickled vegetables.",
			CookingTime:     30,
			Servings:        4,
			Category:        models.CategoryLunch,
			Rating:          4.7,
			NutritionalInfo: models.NutritionalInfo{Calories: 420, Protein: 32, Fat: 18, Carbs: 35},
			Comments:        []models.Comment{},
			CreatedBy:       "chef7",
			CreatedAt:       mustTime("2024-02-01T12:00:00Z"),
			ImageURL:        "/images/Card/Bun cha recipe.png",
		},
		{
			ID:    "8",
			Title: "Bun Bo Hue (Spicy Beef Noodle Soup)",
			Description: "Bun Bo Hue is a spicy and aromatic noodle soup from the ancient imperial city of Hue. This " +
				"complex dish features a rich, lemongrass-scented broth with beef, pork, and thick rice noodles, topped " +
				"with fresh herbs and vegetables.",
			Ingredients: []string{
				"Beef bones",
				"Pork bones",
				"Beef shank",
				"Pork hock",
				"Thick rice noodles (bun bo hue)",
				"Lemongrass",
				"Shrimp paste",
				"Chili oil",
				"Fish sauce",
				"Fresh herbs",
				"Bean sprouts",
				"Lime wedges",
			},
			Instructions: "1. Simmer beef and pork bones for rich broth.\n" +
				"2. Add lemongrass, shrimp paste, and seasonings.\n" +
				"3. Cook beef shank and pork hock until tender.\n" +
				"4. Prepare thick rice noodles.\n" +
				"5. Slice cooked meats.\n" +
				"6. Assemble bowls with noodles, meat, and hot broth.\n" +
				"7. Serve with fresh herbs, bean sprouts, and lime.",
			CookingTime:     180,
			Servings:        6,
			Category:        models.CategoryDinner,
			Rating:          4.8,
			NutritionalInfo: models.NutritionalInfo{Calories: 520, Protein: 38, Fat: 15, Carbs: 45},
			Comments:        []models.Comment{},
			CreatedBy:       "chef8",
			CreatedAt:       mustTime("2024-02-05T14:00:00Z"),
			ImageURL:        "/images/Card/bun bo Hue recipe.png",
		},
	}
}
