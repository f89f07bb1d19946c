package menu

import "github.com/shopspring/decimal"

var categories = []string{
	"All",
	"Saawariya Specialty",
	"Saawariya Vrat Special",
	"Saawariya Combos",
	"Saawariya's Dessert",
}

func rs(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

var catalog = []Item{
	// Saawariya Specialty
	{ID: 1, Name: "Thekua", Price: rs(149), TakeawayPrice: rs(135), Category: "Saawariya Specialty", Veg: true, Popular: true},
	{ID: 2, Name: "Dal Pithi", Price: rs(149), TakeawayPrice: rs(135), Category: "Saawariya Specialty", Veg: true},
	{ID: 3, Name: "Sabu dana Vada", Price: rs(149), TakeawayPrice: rs(135), Category: "Saawariya Specialty", Veg: true},
	{ID: 4, Name: "Farra", Price: rs(149), TakeawayPrice: rs(135), Category: "Saawariya Specialty", Veg: true},
	{ID: 5, Name: "Bhauri", Price: rs(139), TakeawayPrice: rs(125), Category: "Saawariya Specialty", Veg: true},
	{ID: 6, Name: "Chana Dal Pakora", Price: rs(99), TakeawayPrice: rs(89), Category: "Saawariya Specialty", Veg: true},
	{ID: 7, Name: "2 Sattu Paratha", Price: rs(129), TakeawayPrice: rs(116), Category: "Saawariya Specialty", Veg: true},
	{ID: 8, Name: "Poha", Price: rs(129), TakeawayPrice: rs(116), Category: "Saawariya Specialty", Veg: true},
	{ID: 9, Name: "Appe", Price: rs(99), TakeawayPrice: rs(89), Category: "Saawariya Specialty", Veg: true},
	{ID: 10, Name: "Sev Tamatar Sabji", Price: rs(139), TakeawayPrice: rs(125), Category: "Saawariya Specialty", Veg: true},
	{ID: 11, Name: "2 Besan Chilla", Price: rs(129), TakeawayPrice: rs(116), Category: "Saawariya Specialty", Veg: true},
	{ID: 12, Name: "Namkeen Sevai", Price: rs(119), TakeawayPrice: rs(107), Category: "Saawariya Specialty", Veg: true},
	{ID: 13, Name: "Nimona", Price: rs(219), TakeawayPrice: rs(197), Category: "Saawariya Specialty", Veg: true, Popular: true},

	// Saawariya Vrat Special
	{ID: 14, Name: "Paneer Pakora", Price: rs(169), TakeawayPrice: rs(152), Category: "Saawariya Vrat Special", Subcategory: "Vrat Snacks", Veg: true},
	{ID: 15, Name: "Aloo Vada", Price: rs(149), TakeawayPrice: rs(134), Category: "Saawariya Vrat Special", Subcategory: "Vrat Snacks", Veg: true},
	{ID: 16, Name: "Sabu dana Vada", Price: rs(149), TakeawayPrice: rs(134), Category: "Saawariya Vrat Special", Subcategory: "Vrat Snacks", Veg: true},
	{ID: 17, Name: "Sabu dana Kheer", Price: rs(149), TakeawayPrice: rs(134), Category: "Saawariya Vrat Special", Subcategory: "Vrat Sweet", Veg: true},
	{ID: 18, Name: "Aloo Jeera with Curd", Price: rs(169), TakeawayPrice: rs(152), Category: "Saawariya Vrat Special", Subcategory: "Vrat Meal Combo", Veg: true},
	{ID: 19, Name: "Sabudana Khichdi with Curd", Price: rs(139), TakeawayPrice: rs(125), Category: "Saawariya Vrat Special", Subcategory: "Vrat Meal Combo", Veg: true},
	{ID: 20, Name: "Vrat Basic Thali", Description: "Aloo Jeera + Kuttu ke atta ki 4 poori + Curd", Price: rs(189), TakeawayPrice: rs(170), Category: "Saawariya Vrat Special", Subcategory: "Vrat Meal Combo", Veg: true},
	{ID: 21, Name: "Vrat Special Thali", Description: "Sabudana Khichdi + Aloo Jeera + Aloo Vada + Curd", Price: rs(249), TakeawayPrice: rs(224), Category: "Saawariya Vrat Special", Subcategory: "Vrat Meal Combo", Veg: true, Popular: true},

	// Saawariya Combos
	{ID: 22, Name: "Chili Paneer with Fried Rice/Noodles", Description: "Served with a coke", Price: rs(269), TakeawayPrice: rs(242), Category: "Saawariya Combos", Veg: true, Popular: true},
	{ID: 23, Name: "Veg Manchurian with Fried Rice/Noodles", Description: "Served with a coke", Price: rs(249), TakeawayPrice: rs(224), Category: "Saawariya Combos", Veg: true},
	{ID: 24, Name: "Dal Fry Combo", Description: "Served with Rice/4 Roti/2 Paratha", Price: rs(159), TakeawayPrice: rs(143), Category: "Saawariya Combos", Veg: true},
	{ID: 25, Name: "Poori Sabji Combo", Description: "Served with 6 Poori/4 Roti/2 Paratha/4 Chawal ke Atte ki poori", Price: rs(149), TakeawayPrice: rs(134), Category: "Saawariya Combos", Veg: true},
	{ID: 26, Name: "Paneer Bhurji Combo", Description: "Served with 4 Roti/2 Paratha", Price: rs(179), TakeawayPrice: rs(161), Category: "Saawariya Combos", Veg: true},
	{ID: 27, Name: "Winter Special Combo", Description: "Nimona + Rice + 4 Roti/2 Paratha", Price: rs(199), TakeawayPrice: rs(179), Category: "Saawariya Combos", Veg: true, Popular: true},
	{ID: 28, Name: "Veg Basic Thali", Description: "Daal + Sookhi Sabji + Rice + 4 Roti/2 Paratha", Price: rs(169), TakeawayPrice: rs(152), Category: "Saawariya Combos", Veg: true},
	{ID: 29, Name: "Veg Standard Thali", Description: "Paneer ki Sabji + Rice + Roti/Paratha", Price: rs(199), TakeawayPrice: rs(179), Category: "Saawariya Combos", Veg: true},
	{ID: 30, Name: "Veg Special Thali", Description: "Paneer ki Sabji + Daal + Rice + Roti/Paratha + Sweet", Price: rs(249), TakeawayPrice: rs(224), Category: "Saawariya Combos", Veg: true, Popular: true},

	// Saawariya's Dessert
	{ID: 31, Name: "Kheer", Price: rs(149), TakeawayPrice: rs(134), Category: "Saawariya's Dessert", Veg: true},
	{ID: 32, Name: "Pedha", Price: rs(179), TakeawayPrice: rs(161), Category: "Saawariya's Dessert", Veg: true, Quantity: "250 grams"},
	{ID: 33, Name: "Pedha", Price: rs(349), TakeawayPrice: rs(314), Category: "Saawariya's Dessert", Veg: true, Quantity: "500 grams"},
	{ID: 34, Name: "Pedha", Price: rs(699), TakeawayPrice: rs(629), Category: "Saawariya's Dessert", Veg: true, Quantity: "1 Kilogram"},
	{ID: 35, Name: "Dry Fruits Laddu", Price: rs(349), TakeawayPrice: rs(314), Category: "Saawariya's Dessert", Veg: true, Quantity: "250 grams", Popular: true},
	{ID: 36, Name: "Dry Fruits Laddu", Price: rs(749), TakeawayPrice: rs(674), Category: "Saawariya's Dessert", Veg: true, Quantity: "500 grams"},
	{ID: 37, Name: "Dry Fruits Laddu", Price: rs(1549), TakeawayPrice: rs(1394), Category: "Saawariya's Dessert", Veg: true, Quantity: "1 Kilogram"},
	{ID: 38, Name: "Gondh ke Laddu", Price: rs(289), TakeawayPrice: rs(260), Category: "Saawariya's Dessert", Veg: true, Quantity: "250 grams"},
	{ID: 39, Name: "Gondh ke Laddu", Price: rs(599), TakeawayPrice: rs(539), Category: "Saawariya's Dessert", Veg: true, Quantity: "500 grams"},
	{ID: 40, Name: "Gondh ke Laddu", Price: rs(1199), TakeawayPrice: rs(1079), Category: "Saawariya's Dessert", Veg: true, Quantity: "1 Kilogram"},
	{ID: 41, Name: "Alsi ke Laddu", Price: rs(279), TakeawayPrice: rs(251), Category: "Saawariya's Dessert", Veg: true, Quantity: "250 grams"},
	{ID: 42, Name: "Alsi ke Laddu", Price: rs(599), TakeawayPrice: rs(539), Category: "Saawariya's Dessert", Veg: true, Quantity: "500 grams"},
	{ID: 43, Name: "Alsi ke Laddu", Price: rs(1199), TakeawayPrice: rs(1079), Category: "Saawariya's Dessert", Veg: true, Quantity: "1 Kilogram"},
}
