package seed

import "github.com/teka-app/teka/internal/models"

// BlogPosts returns the seed editorial posts, newest-last in storage order.
func BlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:    "1",
			Title: "The Art of Vietnamese Pho: A Journey Through History",
			Slug:  "art-of-vietnamese-pho-history",
			Excerpt: "Discover the fascinating history behind Vietnam's most iconic dish and learn why pho is more than " +
				"just a soup - it's a cultural symbol that tells the story of Vietnamese resilience and creativity.",
			Content: `# The Art of Vietnamese Pho: A Journey Through History

Pho (pronounced "fuh") is more than just Vietnam's national dish – it's a cultural phenomenon that embodies the soul of Vietnamese cuisine. This aromatic noodle soup has traveled from the streets of Hanoi to kitchens around the world, carrying with it centuries of tradition.

## The Origins of Pho

The exact origins of pho are debated among food historians, but most agree it emerged in northern Vietnam in the early 20th century. Some believe it evolved from the French pot-au-feu during the colonial period, while others trace its roots to Chinese noodle soups brought by immigrants.

## The Sacred Broth

The heart of any good pho lies in its broth – a clear, aromatic liquid that takes hours to perfect. Traditional pho broth is made by simmering beef or chicken bones with a carefully balanced blend of spices:

- **Star anise** - provides the distinctive licorice-like aroma
- **Cinnamon** - adds warmth and sweetness
- **Cloves** - contributes depth and complexity
- **Cardamom** - brings a subtle floral note
- **Fennel seeds** - enhances the anise flavor

## Regional Variations

### Pho Bac (Northern Style)
- Clear, clean broth
- Wider noodles
- Simple garnishes: onions, cilantro, lime

### Pho Nam (Southern Style)
- Slightly sweeter broth
- Thinner noodles
- Abundant fresh herbs, bean sprouts, hoisin and sriracha

## Conclusion

Pho is Vietnam on a spoon – complex yet comforting, traditional yet adaptable, simple yet profound. When you eat pho, you're participating in a cultural tradition that spans generations.`,
			Author:       "Đăng Nguyễn",
			AuthorAvatar: "/placeholder.svg?height=40&width=40",
			PublishedAt:  mustTime("2024-01-15T10:00:00Z"),
			ReadTime:     8,
			Category:     "Culture & History",
			Tags:         []string{"pho", "history", "culture", "tradition", "vietnamese cuisine"},
			ImageURL:     "/images/Stories/Beef-Pho_6.png",
			Featured:     true,
			Views:        1250,
			Likes:        89,
		},
		{
			ID:    "2",
			Title: "Street Food Secrets: The Magic of Vietnamese Bánh Mì",
			Slug:  "street-food-secrets-banh-mi-magic",
			Excerpt: "Explore the fascinating fusion history of bánh mì and discover the secrets behind Vietnam's most " +
				"beloved sandwich that perfectly represents the country's ability to blend cultures.",
			Content: `# Street Food Secrets: The Magic of Vietnamese Bánh Mì

The bánh mì is perhaps the most perfect example of Vietnamese culinary fusion – a sandwich that tells the story of Vietnam's complex history while creating something entirely new and delicious.

## A Sandwich Born from History

The bánh mì emerged during French colonial rule in Vietnam (1887-1954), when French baguettes met Vietnamese ingredients and creativity. What started as cultural imposition became cultural innovation.

## The Anatomy of a Perfect Bánh Mì

- **The bread** - light, airy baguette with a thin, crisp crust
- **The spread** - pâté and mayonnaise for richness
- **The protein** - grilled pork, cold cuts, or crispy pork belly
- **The pickles** - đồ chua (pickled carrot and daikon) for brightness
- **The herbs** - cilantro, cucumber, and chili for freshness

## Street Food Culture

In Vietnam, bánh mì is breakfast, lunch, and a late-night snack. Vendors carve out loyal followings over decades, each guarding small variations in their pickles, pâté, and bread.

## Conclusion

Every bánh mì is a small act of history – colonial bread transformed into something unmistakably Vietnamese.`,
			Author:       "Đăng Nguyễn",
			AuthorAvatar: "/placeholder.svg?height=40&width=40",
			PublishedAt:  mustTime("2024-01-20T14:30:00Z"),
			ReadTime:     6,
			Category:     "Street Food",
			Tags:         []string{"banh mi", "street food", "fusion", "history", "sandwich"},
			ImageURL:     "/images/Stories/Beef-Pho_6.png",
			Featured:     true,
			Views:        980,
			Likes:        67,
		},
		{
			ID:    "3",
			Title: "Essential Vietnamese Herbs: Your Guide to Authentic Flavors",
			Slug:  "essential-vietnamese-herbs-guide",
			Excerpt: "Master the art of Vietnamese cooking by understanding the essential herbs that give Vietnamese " +
				"cuisine its distinctive fresh, aromatic character.",
			Content: `# Essential Vietnamese Herbs: Your Guide to Authentic Flavors

Vietnamese cuisine is renowned for its fresh, vibrant flavors, and much of this character comes from the abundant use of fresh herbs. Understanding these herbs is key to creating authentic Vietnamese dishes at home.

## The Philosophy of Fresh Herbs

In Vietnamese cooking, fresh herbs aren't just garnishes – they're integral ingredients that balance rich broths, cut through fat, and add layers of aroma to every bite.

## The Essential Herbs

- **Thai basil (húng quế)** - anise-like, essential for pho
- **Cilantro (ngò rí)** - bright and citrusy, used everywhere
- **Mint (húng lủi)** - cooling, key in rice paper rolls and bún dishes
- **Vietnamese coriander (rau răm)** - peppery, pairs with duck and salads
- **Perilla (tía tô)** - complex, slightly metallic, beautiful purple underside
- **Sawtooth herb (ngò gai)** - stronger cilantro flavor for soups

## Storing and Serving

Keep herbs stem-down in water, loosely covered, and tear rather than cut them at the table. A proper herb plate turns a bowl of soup into a meal you compose bite by bite.

## Conclusion

Learn these herbs and you hold the key to the fresh, layered flavors that define Vietnamese food.`,
			Author:       "Đăng Nguyễn",
			AuthorAvatar: "/placeholder.svg?height=40&width=40",
			PublishedAt:  mustTime("2024-01-25T09:15:00Z"),
			ReadTime:     7,
			Category:     "Ingredients & Tips",
			Tags:         []string{"herbs", "ingredients", "cooking tips", "authentic", "fresh"},
			ImageURL:     "/images/Stories/Authentic flavors.png",
			Featured:     false,
			Views:        756,
			Likes:        45,
		},
		{
			ID:    "4",
			Title: "The Story of Vietnamese Coffee: From French Legacy to Global Phenomenon",
			Slug:  "vietnamese-coffee-story-french-legacy",
			Excerpt: "Discover how Vietnamese coffee culture evolved from French colonial influence into a unique " +
				"tradition that's now captivating coffee lovers worldwide.",
			Content: `# The Story of Vietnamese Coffee: From French Legacy to Global Phenomenon

Vietnamese coffee culture is a fascinating blend of French colonial influence, Vietnamese innovation, and pure deliciousness. Today, Vietnam is the world's second-largest coffee producer, and Vietnamese coffee culture has become a global phenomenon.

## The French Connection

Coffee arrived in Vietnam in the 1850s with French colonists who established plantations in the Central Highlands. The robusta bean thrived in the climate, and the Vietnamese made the drink their own.

## The Phin Filter Ritual

Vietnamese coffee is brewed cup by cup through a small metal phin filter. The slow drip is the point: coffee here is an occasion, not a transaction.

- **Cà phê sữa đá** - iced coffee with sweetened condensed milk
- **Cà phê đen** - strong black coffee
- **Cà phê trứng** - Hanoi's famous egg coffee
- **Bạc xỉu** - mostly milk, a little coffee

## Making Vietnamese Coffee at Home

Use a medium-coarse grind, don't pack the grounds too tight, water around 200°F, and let it drip slowly – rushing ruins the coffee.

## Conclusion

Vietnamese coffee is more than a beverage – it's a cultural institution that reflects Vietnamese values of patience, community, and innovation.`,
			Author:       "Đăng Nguyễn",
			AuthorAvatar: "/placeholder.svg?height=40&width=40",
			PublishedAt:  mustTime("2024-01-30T11:45:00Z"),
			ReadTime:     9,
			Category:     "Culture & History",
			Tags:         []string{"coffee", "culture", "history", "tradition", "vietnamese drinks"},
			ImageURL:     "/images/Stories/French Legacy.png",
			Featured:     false,
			Views:        1100,
			Likes:        78,
		},
	}
}
