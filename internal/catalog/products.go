package catalog

// DefaultProducts is the static Lumina collection served by the storefront.
var DefaultProducts = []Product{
	{
		ID:          "1",
		Name:        "AeroPulse Wireless Headphones",
		Description: "Next-gen noise cancellation with 40-hour battery life and immersive spatial audio.",
		Price:       299.99,
		Category:    CategoryElectronics,
		Image:       "https://picsum.photos/seed/headphones/600/600",
		Rating:      4.8,
		Reviews:     124,
		Stock:       15,
	},
	{
		ID:          "2",
		Name:        "Luxe Cashmere Overcoat",
		Description: "Sustainable Mongolian cashmere blend, tailored for a timeless silhouette.",
		Price:       450.00,
		Category:    CategoryFashion,
		Image:       "https://picsum.photos/seed/coat/600/600",
		Rating:      4.9,
		Reviews:     56,
		Stock:       8,
	},
	{
		ID:          "3",
		Name:        "Zenith Smart Watch Pro",
		Description: "Crystal-clear OLED display with advanced health monitoring and GPS tracking.",
		Price:       199.50,
		Category:    CategoryElectronics,
		Image:       "https://picsum.photos/seed/watch/600/600",
		Rating:      4.6,
		Reviews:     890,
		Stock:       25,
	},
	{
		ID:          "4",
		Name:        "Nordic Oak Coffee Table",
		Description: "Minimalist Scandinavian design crafted from solid sustainably sourced white oak.",
		Price:       320.00,
		Category:    CategoryHome,
		Image:       "https://picsum.photos/seed/table/600/600",
		Rating:      4.7,
		Reviews:     32,
		Stock:       5,
	},
	{
		ID:          "5",
		Name:        "Prism Glass Desk Lamp",
		Description: "Architectural lighting with adjustable color temperature and wireless charging base.",
		Price:       85.00,
		Category:    CategoryHome,
		Image:       "https://picsum.photos/seed/lamp/600/600",
		Rating:      4.5,
		Reviews:     210,
		Stock:       40,
	},
	{
		ID:          "6",
		Name:        "Urban Explorer Backpack",
		Description: "Waterproof tech-ready pack with hidden compartments and ergonomic support.",
		Price:       120.00,
		Category:    CategoryLifestyle,
		Image:       "https://picsum.photos/seed/backpack/600/600",
		Rating:      4.4,
		Reviews:     156,
		Stock:       12,
	},
	{
		ID:          "7",
		Name:        "Serene Ceramic Tea Set",
		Description: "Hand-thrown stoneware with a reactive glaze, including a teapot and four cups.",
		Price:       65.00,
		Category:    CategoryLifestyle,
		Image:       "https://picsum.photos/seed/teaset/600/600",
		Rating:      4.9,
		Reviews:     44,
		Stock:       10,
	},
	{
		ID:          "8",
		Name:        "Elysium Silk Scarf",
		Description: "Hand-painted 100% mulberry silk with vibrant organic patterns.",
		Price:       55.00,
		Category:    CategoryFashion,
		Image:       "https://picsum.photos/seed/scarf/600/600",
		Rating:      4.8,
		Reviews:     18,
		Stock:       20,
	},
}
