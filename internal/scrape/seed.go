package scrape

import (
	"fmt"

	"github.com/thehickorykampala/hickory/internal/domain"
)

// SeedRecords returns the curated dataset merged into every scrape run:
// verified records collected from the restaurant's website pages, its
// TripAdvisor listing and the Kampala tourism portal. The live site is
// template-heavy and yields few clean blocks, so the seed carries most of
// the corpus and guarantees every label has coverage.
func SeedRecords() []domain.Record {
	var records []domain.Record
	add := func(label domain.Label, texts []string) {
		for _, text := range texts {
			records = append(records, domain.ReconstructRecord(text, label))
		}
	}

	add(domain.LabelAbout, aboutTexts)
	add(domain.LabelFood, foodTexts())
	add(domain.LabelDrinks, drinkTexts)
	add(domain.LabelWines, wineTexts)
	add(domain.LabelCake, cakeTexts)
	add(domain.LabelReviews, reviewTexts)
	add(domain.LabelServices, serviceTexts)
	return records
}

var aboutTexts = []string{
	"The Hickory is an upscale restaurant and lounge located in Kololo Kampala Uganda known as The Woody Wine and Dine",
	"The Hickory draws inspiration from the hickory tree symbolizing strength competence adventure and a spirit of fortitude",
	"The hickory tree was historically used in wagon wheels tool handles and early aircraft construction representing durability and quality",
	"The Hickory gained rapid popularity following its opening challenging established high-end establishments in Kampala",
	"The restaurant offers international European fusion cuisine with signature dishes and an extensive cocktail and wine selection",
	"The Hickory features contemporary stylish ambiance with both indoor and garden seating areas",
	"The restaurant provides free Wi-Fi outdoor seating takeaway services and disabled access",
	"The Hickory participates in Kampala Restaurant Week with special menus and incentives",
	"The Hickory is known for its charming ambiance and garden-like setting particularly beautiful at night",
	"Located at Plot 11 Ngabo Road Kololo Kampala Uganda the restaurant operates from 8am to 11pm everyday",
	"The Hickory offers reservation services event hosting and catering for special occasions",
	"The restaurant features a Monthly Chefs Specials program with rotating specialty dishes",
	"Cocktail Oclock is a signature experience at The Hickory featuring their handcrafted cocktail menu",
	"The Hickory maintains an active social media presence on Facebook Twitter Instagram and TripAdvisor",
	"Contact The Hickory at phone number +256 758 809 187 or email info@thehickorykampala.com",
}

var foodItemTexts = []string{
	// Starters and soups
	"Mixed cheese cubes coated in breadcrumbs and lightly fried served as a vegetarian starter",
	"Base of lettuce prawns and avocado in cocktail sauce a fresh seafood appetizer",
	"Fresh shrimp pan-fried with chilli and garlic finished with lemon and herbs on toasted bread",
	"Stir-fried chicken with roasted cashew nuts in brown-garlic sauce an Asian-inspired starter",
	"Ground beef with garlic coriander and onions baked and coated in barbeque sauce",
	"Roasted spiced pumpkin soup with celery butter garlic and coriander a vegetarian option",
	"Flank steak tossed in Mongolian sauce and sweet peppers an Asian-inspired appetizer",
	"Buffalo chicken wings with Asian condiments and spicy barbeque glaze",
	"Deep-fried calamari served with tartar sauce an Italian-style seafood starter",
	"Deep-fried butter-coated prawns with honey-mayonnaise glaze a Japanese-inspired dish",
	"Beef fillet cubes wrapped in bacon baked and served with salad",
	"Daily freshly prepared soup ask server for details",
	"Crispy chicken breast strips coated in breadcrumbs served with sweet-chilli sauce",
	"Chicken wings with garlic and Parmesan sauce a savoury appetizer",
	// Salads
	"Cucumber bell peppers olives tomatoes lettuce carrots onions with lemon and vinaigrette a vegetarian option",
	"Lettuce onions cucumber peppers tomatoes olives and feta cheese a classic Mediterranean vegetarian salad",
	"Romaine lettuce anchovies croutons grilled chicken breast and Caesar dressing",
	"Salmon shrimp and calamari on lettuce with cherry tomatoes and cucumber",
	"Grilled chicken breast avocado tomatoes eggs bacon cheddar cheese with shallot vinaigrette",
	"Fresh lettuce tomatoes mango topped with herbed prawns and cocktail dressing",
	// Curries
	"Fresh cilantro basil coriander and coconut milk with steamed vegetables served with rice vegetarian",
	"Fresh cilantro basil coriander and coconut milk with beef fillet served with steamed rice",
	"Fresh cilantro basil coriander and coconut milk with chicken fillet served with steamed rice",
	"Fresh cilantro basil coriander and coconut milk with tilapia fillet served with steamed rice",
	"Fresh cilantro basil coriander and coconut milk with salmon fillet served with steamed rice",
	"Cilantro lemon grass galangal chillies and kaffir lime with steamed vegetables vegetarian",
	"Cilantro lemon grass galangal chillies and kaffir lime with beef fillet served with rice",
	"Cilantro lemon grass galangal chillies and kaffir lime with chicken fillet served with rice",
	"Cilantro lemon grass galangal chillies and kaffir lime with tilapia fillet served with rice",
	"Cilantro lemon grass galangal chillies and kaffir lime with salmon fillet served with rice",
	"Garlic sweet peppers onions and basil with steamed vegetables vegetarian",
	"Garlic sweet peppers onions and basil with beef fillet served with steamed rice",
	"Garlic sweet peppers onions and basil with chicken fillet served with steamed rice",
	"Boneless goat leg cubes in traditional curry sauce served with steamed rice a local favourite",
	// Burgers
	"Grilled free-range chicken patty with lettuce cheese onions tomatoes mayonnaise served with chips and salad",
	"Grilled beef patty with lettuce cheese onions tomatoes mayonnaise served with crispy chips and garden salad",
	"Crumbed tilapia fillet with tomatoes onion rings lettuce and Thousand Island dressing served with chips",
	"Organic vegetables with caramelised French onions a vegetarian burger served with chips and salad",
	"Ground beef and pork blend with mozzarella cheese basil and marinara sauce served with chips",
	// Butcher's choice
	"Organic beef fillet with steamed vegetables and choice of Bearnaise mushroom peppercorn or Arrabbiata sauce with parsley potatoes",
	"500g marinated with thyme and garlic grilled and served with peppercorn sauce and potato wedges",
	"Grilled beef fillet with creamy gorgonzola sauce crispy bacon and grilled onion rings with lyonnaise potatoes",
	"Beef fillet wrapped in bacon stuffed with cheese and mushrooms served with creamy spinach mushroom sauce and lyonnaise potatoes",
	// Pasta and risotto
	"Beef fillet strips with fusilli pasta bell peppers and gorgonzola cheese",
	"Traditional silky pasta sheets coated in Bolognese and bechamel topped with mozzarella and Grana Padano",
	"Spaghetti in classic beef Bolognese sauce a traditional Italian favourite",
	"Pasta with crispy bacon cooking cream egg yolks and Parmesan cheese served with garlic bread",
	"Penne pasta in creamy spinach sauce with chicken strips and sun-dried tomatoes topped with Grana Padano",
	"Italian rice in creamy tomato sauce with beef meatballs topped with Parmesan",
	"Classic Italian pasta in creamy garlic sauce with chicken breast chunks topped with bacon and Grana Padano",
	"Risotto rice tossed with shrimp and calamari a seafood Italian classic",
	"Traditional Italian rice tossed with steamed vegetables a vegetarian risotto",
	"Penne in spicy tomato sauce topped with basil and Parmesan a vegetarian pasta",
	"Pasta layered with Ugandan vegetables bechamel Parmesan and baked a vegetarian lasagne",
	"Tomato and basil linguine topped with beef fillet steak and Grana Padano",
	"Penne pasta with grilled chicken breast strips coconut cream and tomato sauce",
	// Mains
	"Grilled pork chops on creamy sukuma-wiki served with mushroom sauce and fried plantain a local Ugandan dish",
	"Spiced pork ribs baked until golden-brown served with choice of barbeque pesto or mushroom sauce and fried plantain",
	"Lake Victoria Nile perch marinated and baked on creamy spinach served with mushroom sauce and mashed potatoes",
	"Juicy pork chops in homemade creamy Tuscan sauce served with fried plantain",
	"Marinated chicken breast wrapped in bacon stuffed with spinach and mozzarella with mushroom sauce steamed vegetables and rice",
	"Grilled tilapia fillet on creamy spinach with choice of tomato-cashew nut mushroom tomato-basil or coconut sauce with rice",
	"Rosemary oregano and honey-marinated chicken served with mushroom sauce handpicked vegetables and crispy chips",
	"Skinless chicken breast with choice of Puttanesca mushroom peanut coconut or Cioppino sauce with vegetable rice",
	"Breaded chicken breast stuffed with ham and cheese topped with Dijon sauce served with lyonnaise potatoes",
	"Mixed grill of quarter chicken mini beef fillet steak chicken skewers and pork skewers with mushroom sauce and potato wedges",
	"Grilled Norwegian salmon fillet with steamed vegetables and tomato-cashew nut sauce served with vegetable rice",
	"Grilled jumbo prawns marinated with garlic butter and lemon served with garden salad tartar sauce and crispy chips",
	"Grilled tilapia fillet on linguine pasta in pesto sauce served with steamed vegetables",
	"Beef fillet marinated with Moroccan spices in chilli-lime sauce served with avocado slices and mashed potatoes",
	"Pan-seared Norwegian salmon fillet in homemade creamy Tuscan sauce served with risotto rice",
	"Boneless pork chops coated in breadcrumbs and deep-fried served with mushroom sauce and masala chips",
	"Lake Victoria tilapia fillet wrapped in bacon and grilled served with white wine-caper sauce and mashed potatoes",
	// Desserts
	"Fresh organic fruit salad served with scoops of ice cream a light and refreshing dessert",
	"Classic Italian coffee-flavoured dessert made with layers of mascarpone and espresso-soaked ladyfingers",
	"Daily selection of freshly baked cake ask your server for todays special flavour",
	"Classic French custard dessert with a caramelised sugar crust",
	"Rich and creamy New York style cheesecake a classic American dessert",
	"Warm chocolate cake with a molten chocolate center a rich indulgent dessert",
	"Baked apple tart with a buttery crumble topping served warm",
	"Two scoops of premium ice cream in your choice of flavour",
	"Ice cream sundae with caramel nuts and chocolate sauce",
}

var sauceNames = []string{
	"Tuscan", "mushroom", "peppercorn", "pesto", "arrabbiata", "peanut",
	"coconut", "barbeque", "Dijon", "Puttanesca", "tartar", "bearnaise",
	"gorgonzola", "tomato-basil", "white wine-caper", "Cioppino",
	"tomato-cashew nut", "chilli-lime",
}

var sideNames = []string{
	"Steamed vegetables", "garden-fresh salad", "crispy chips", "steamed rice",
	"vegetable rice", "mashed potatoes", "potato wedges", "parsley potatoes",
	"avocado", "lyonnaise potatoes", "masala chips", "fried plantain", "creamy spinach",
}

func foodTexts() []string {
	texts := make([]string, 0, len(foodItemTexts)+len(sauceNames)+len(sideNames))
	texts = append(texts, foodItemTexts...)
	for _, s := range sauceNames {
		texts = append(texts, fmt.Sprintf("%s sauce available as an accompaniment to main dishes and steaks", s))
	}
	for _, s := range sideNames {
		texts = append(texts, fmt.Sprintf("%s served as a side dish accompaniment to main courses", s))
	}
	return texts
}

var drinkTexts = []string{
	// Coffees
	"Single shot of espresso a classic Italian coffee",
	"Double shot of espresso for a stronger coffee experience",
	"Single shot cappuccino with steamed milk and foam",
	"Double shot cappuccino with steamed milk and foam",
	"Espresso with chocolate and steamed milk a sweet coffee drink",
	"Espresso marked with a dollop of foamed milk",
	"Espresso with steamed milk smooth and creamy coffee",
	"Single espresso diluted with hot water a classic black coffee",
	"Double espresso diluted with hot water for a stronger black coffee",
	"Rich creamy hot chocolate drink",
	"Traditional African-style brewed coffee with local spices",
	// Teas
	"Simple plain black tea served hot",
	"Spiced tea with steamed milk an aromatic warm drink",
	"Black tea infused with traditional spices",
	"African-style spiced tea with local herbs and spices",
	"Kenyan honey and lemon tea known for soothing and healing properties",
	"Caffeine-free herbal infusion tea",
	// Beers and ciders
	"Ugandan locally brewed beer",
	"Ugandan locally produced cider",
	"Premium imported cider",
	"Premium imported beer",
	// Cold beverages
	"Freshly squeezed fruit juice",
	"Soft drink carbonated beverage",
	"Sugar-free diet cola",
	"Still mineral water",
	"Energy drink",
	"Chilled coffee drink served over ice",
	"Chilled tea drink refreshing and light",
	"Creamy blended milkshake in various flavours",
	"Fresh fruit smoothie blended with ice",
	"Carbonated sparkling mineral water",
	// Cocktails
	"Sweet refreshing martini drink in green apple flavour",
	"Equal part of vodka and triple sec plus fresh cranberry juice a classic cocktail",
	"Traditional aperitif cocktail best enjoyed before meals elegant and strong",
	"Cosmopolitan variant with a minty twist a Hickory signature cocktail",
	"Mexican tequila thirst-quencher with triple sec and freshly squeezed lime juice",
	"Mix of sweet Merlot and Bourbon whiskey a timeless classic cocktail",
	"Raspberry-based cocktail infused with fresh berries fruity and refreshing",
	"Gin-based cocktail with hints of rosemary and basil herbal and aromatic",
	"London gin with strawberry and grapes finishing a fruity gin cocktail",
	"Iced punch with fruit infusion and red wine a Spanish classic",
	"Iced punch with fruit infusion and white wine refreshing",
	"Sweet and sour cocktail with pineapple texture made with whiskey",
	"Baileys Irish cream freakshake with cookies and chocolate an indulgent dessert cocktail",
	"Cuban classic with rum mint sugar and lime juice refreshing and minty",
	"Multiple spirits mixed into a potent cocktail that looks like iced tea",
	"Five different spirits and red bull a strong and energizing cocktail",
	"Fruity punch with Uganda waragi pineapple a locally inspired tropical cocktail",
	"Vodka with whisky liqueur and fresh watermelon juice refreshing and fruity",
	"Quality rum infused in tropical fruit juice a Polynesian classic cocktail",
	"Amarula chocolate sauce and spiced rum a sweet and creamy cocktail",
	"Jack Daniels honey whiskey with ginger ale a smooth whiskey cocktail",
	"Gin and tonic with mint liqueur and fresh mint a refreshing gin cocktail",
	"Passion and berries-infused beauty made with vodka fruity and vibrant",
	"Vodka-based raspberry cocktail sweet and berry-flavoured",
	"Campari sweet vermouth and gin a classic Italian bitter cocktail",
	"Uganda waragi coconut with Smirnoff vodka a tropical cocktail",
	"Fruit and booze combination a signature Hickory cocktail",
	"Vodka blue curacao cointreau and strawberries a colourful cocktail",
	// Pitcher cocktails
	"Coconut rum blue curacao liqueur and lemonade served in a pitcher for sharing",
	"Strawberries basil and lemonade served in a pitcher for groups",
	"Iced punch with fruit infusion and wine served in a pitcher",
	"Melon-flavoured with vodka rose wine and fresh fruits served in a pitcher",
	// Non-alcoholic
	"Tropical punch non-alcoholic refreshing fruit beverage",
	"Coconut refresher with pineapple juice a non-alcoholic pina colada",
	"Non-alcoholic mojito with mint lime and soda refreshing and light",
	"Baristas choice tropical fruits blended with ice a refreshing non-alcoholic smoothie",
	"Fresh pineapple juice and mint leaves a simple refreshing drink",
	"Avocado bananas mangoes celery and spinach smoothie a healthy non-alcoholic option",
	// Shooters
	"Layered shooter cocktail with coffee liqueur Irish cream and Grand Marnier",
	"Sweet layered shooter with Irish cream and whipped cream",
	"Smooth shooter with sambuca and Irish cream",
	"Jagermeister dropped into Red Bull an energizing shooter",
}

var wineTexts = []string{
	"Vibrant and elegant South African white wine with French oak leaves revealing pear-drop aromas",
	"German dry Sauvignon Blanc white wine crisp and refreshing",
	"South African Sauvignon Blanc with fresh citrus and tropical notes",
	"South African classic Sauvignon Blanc crisp and aromatic",
	"Italian Pinot Grigio from Friuli light and refreshing white wine",
	"French Sauvignon Blanc with delicate floral and citrus notes",
	"South African Chardonnay full-bodied and buttery",
	"Italian Moscato sweet and aromatic sparkling white wine",
	"Australian Chardonnay with ripe fruit and oak flavours",
	"Premium South African Chardonnay complex and elegant",
	"South African Sauvignon Blanc with tropical fruit and citrus flavours",
	"South African Merlot smooth and medium-bodied red wine",
	"Premium South African Cabernet Sauvignon full-bodied and rich",
	"South African Cabernet Sauvignon with dark fruit and oak notes",
	"South African Shiraz bold and spicy red wine",
	"Italian Chianti Classico from Tuscany a classic Italian red wine",
	"Italian Chianti medium-bodied with cherry and herb notes",
	"Argentinian Malbec by Catena and Rothschild full-bodied and rich",
	"South African Pinotage a unique grape variety with smoky berry flavours",
	"Australian Shiraz aged in whisky barrels for extra depth and complexity",
	"French Cabernet Sauvignon with blackcurrant and cedar notes",
	"South African Malbec rich and fruity red wine",
	"Australian Cabernet Sauvignon from the renowned Penfolds winery",
	"Italian Prosecco sparkling wine light and celebratory",
	"French sparkling brut wine crisp and refreshing bubbles",
	"Premium French sparkling wine luxurious and elegant",
	"Premium French Champagne house classic Brut elegant and prestigious",
	"Iconic French Champagne known for its consistent quality and golden colour",
	"Prestigious vintage French Champagne the ultimate luxury celebration wine",
	"South African Rose wine light and fruity pink wine",
	"South African Rose fresh and berry-flavoured",
	"French Rose wine from southern France dry and refreshing",
}

var cakeTexts = []string{
	"Classic carrot cake with cream cheese frosting moist and spiced",
	"Rich chocolate cake with chocolate frosting a classic indulgent dessert",
	"Moist coconut cake with coconut cream frosting tropical and sweet",
	"Traditional fruit cake packed with dried fruits and nuts",
	"Zesty lemon cake with lemon glaze refreshing citrus flavour",
	"Fresh strawberry cake with strawberry cream frosting light and fruity",
	"Classic vanilla sponge cake with vanilla buttercream frosting",
	"Rich and creamy vanilla cheesecake with a biscuit base",
	"German chocolate and cherry cake with whipped cream layers",
	"White chocolate and cherry cake with whipped cream a lighter version of Black Forest",
	"Dense and rich chocolate fudge cake with thick chocolate fudge frosting",
	"Classic red velvet cake with cream cheese frosting moist and vibrant",
	"Delicate white chocolate cake with white chocolate frosting elegant and sweet",
}

var reviewTexts = []string{
	"One of the best steaks I have ever had in Kampala and the fudgy dessert tasted fantastic definitely coming back",
	"Great food excellent customer service and the environment is really romantic and breath taking",
	"All the food was amazing and it tasted great the ambiance is perfect for a date night",
	"Exceptional ambiance cleanliness and spacious layout the restaurant is incredibly inviting and well-maintained",
	"Really charming restaurant and bar with swift polite and comfortable service",
	"The staff are exceptional and extremely accommodating they made our dining experience memorable",
	"Good selection of wines from South Africa Italy and France paired perfectly with the food",
	"The cocktail menu is impressive with unique signature drinks like the Hickopolitan and Bulago Island Breeze",
	"Perfect spot for family dinner and birthday celebrations the event hosting is wonderful",
	"The garden setting is beautiful especially at night with great lighting and ambiance",
	"The menu selection was extremely limited and not suitable for vegetarians very disappointed",
	"Disappointed with the small amounts of food served for the price not good value",
	"Very bad service lunch was delayed for an hour and a half unacceptable waiting time",
	"Inconsistent service and parking challenges made the visit frustrating",
	"The Hickory has become one of the top restaurants in Kampala their fusion cuisine is exceptional",
	"Loved the Thai coconut curry and the grilled salmon both were perfectly cooked and seasoned",
	"The wine list is extensive and well-curated with options from multiple countries and price ranges",
	"Great value for money compared to other upscale restaurants in Kampala",
	"The tiramisu and chocolate fondant are must-try desserts absolutely delicious",
	"Beautiful interior design with a woody theme that creates a warm and cozy atmosphere",
	"Good food but the restaurant can get quite loud during peak hours on weekends",
	"The portions are decent but could be larger for the price point",
	"The Lake Victoria fish burger is one of the best fish burgers in Kampala using fresh tilapia",
	"Love the Hickory Carnival Platter perfect for sharing with a group of friends",
	"Parking is very limited especially on weekends plan to arrive early or use a ride service",
	"The Monthly Chefs Specials keep things interesting always something new to try",
	"The breakfast menu is great and they open early at 8am perfect for morning meetings",
	"The Nile perch fillet is a must-try showcasing the best of Ugandan local fish",
	"Cocktail Oclock is a great experience with well-crafted drinks and a lively atmosphere",
	"The pork ribs are fall-off-the-bone tender and the barbeque sauce is homemade perfection",
}

var serviceTexts = []string{
	"The Hickory offers dine-in services with indoor air-conditioned seating and outdoor garden seating",
	"Reservation services available for individuals groups and special events",
	"Event hosting and catering services for birthdays corporate events and celebrations",
	"Takeaway and food packaging services available for all menu items",
	"Free Wi-Fi available for all dining guests",
	"Disabled access and wheelchair-friendly facilities provided",
	"Full bar service with licensed premises for alcoholic beverages",
	"Cake ordering service with custom sizes available in 1kg 1.5kg and 2kg options",
	"Monthly Chef Specials featuring rotating seasonal dishes and new creations",
	"Cocktail Oclock signature experience with handcrafted cocktails and lounge atmosphere",
	"Open daily from 8am to 11pm seven days a week including public holidays",
	"Located in the upscale Kololo neighbourhood of Kampala near major hotels and embassies",
	"The restaurant is designed by Fortitude Solutions with a contemporary woody theme interior",
}
