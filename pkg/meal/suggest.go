package meal

import (
	"strconv"
	"strings"

	"smart-grocery-api/domain"
)

var (
	proteinKeywords = []string{"chicken", "beef", "fish", "tofu", "eggs", "egg", "pork", "shrimp", "salmon"}
	carbKeywords    = []string{"rice", "pasta", "bread", "potato", "noodles", "quinoa"}
	veggieKeywords  = []string{"tomato", "onion", "pepper", "carrot", "lettuce", "spinach", "broccoli", "garlic", "zucchini"}
	saladKeywords   = []string{"tomato", "lettuce", "cucumber", "pepper", "onion", "carrot", "spinach", "cheese"}
)

func matchesAny(ingredient string, keywords []string) bool {
	lower := strings.ToLower(ingredient)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func anyMatch(ingredients []string, keywords []string) bool {
	for _, ingredient := range ingredients {
		if matchesAny(ingredient, keywords) {
			return true
		}
	}
	return false
}

func filterMatching(ingredients []string, keywords []string, limit int) []string {
	matched := make([]string, 0, limit)
	for _, ingredient := range ingredients {
		if matchesAny(ingredient, keywords) {
			matched = append(matched, ingredient)
			if len(matched) == limit {
				break
			}
		}
	}
	return matched
}

func namesOnly(ingredients []string) []domain.MealIngredient {
	out := make([]domain.MealIngredient, 0, len(ingredients))
	for _, name := range ingredients {
		out = append(out, domain.MealIngredient{Name: name})
	}
	return out
}

// GenerateFallbackSuggestions builds up to three meal suggestions from
// ingredient name keyword matching. It is a deterministic stand-in for the
// AI generator: the same pantry and dietary tags always produce the same
// suggestions, in the same order.
func GenerateFallbackSuggestions(ingredients []string, dietaryTags string) []domain.MealSuggestion {
	suggestions := make([]domain.MealSuggestion, 0, 3)

	tags := strings.ToLower(dietaryTags)
	isVegetarian := strings.Contains(tags, "vegetarian")
	isVegan := strings.Contains(tags, "vegan")

	hasProtein := !isVegan && anyMatch(ingredients, proteinKeywords)
	hasCarbs := anyMatch(ingredients, carbKeywords)
	hasVeggies := anyMatch(ingredients, veggieKeywords)
	hasEggs := anyMatch(ingredients, []string{"egg"})

	if hasProtein && hasVeggies && !isVegetarian {
		suggestions = append(suggestions, stirFrySuggestion(ingredients))
	}

	if hasEggs && !isVegan {
		suggestions = append(suggestions, omeletteSuggestion(ingredients))
	}

	saladMatches := filterMatching(ingredients, saladKeywords, 6)
	if len(saladMatches) >= 2 {
		suggestions = append(suggestions, saladSuggestion(saladMatches))
	}

	if hasCarbs && (hasVeggies || hasProtein) {
		suggestions = append(suggestions, comfortBowlSuggestion(ingredients))
	}

	if len(suggestions) < 3 {
		suggestions = append(suggestions, chefsSurpriseSuggestion(ingredients))
	}

	if len(suggestions) < 3 {
		suggestions = append(suggestions, onePotSuggestion(ingredients))
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

func stirFrySuggestion(ingredients []string) domain.MealSuggestion {
	keywords := []string{"chicken", "beef", "tofu", "tomato", "onion", "pepper", "carrot", "garlic", "rice"}

	return domain.MealSuggestion{
		Title:        "Savory Stir-Fry Bowl",
		Ingredients:  namesOnly(filterMatching(ingredients, keywords, 6)),
		Instructions: "Cut protein into bite-sized pieces and season. Heat oil in a wok or large pan over high heat. Stir-fry protein until golden, then add vegetables. Season with soy sauce, garlic, and your favorite spices. Serve over rice or noodles.",
		DetailedSteps: []string{
			"Step 1: Cut your protein (chicken, beef, or tofu) into bite-sized pieces and season with salt, pepper, and your favorite spices.",
			"Step 2: Heat 2 tablespoons of oil in a wok or large pan over high heat until shimmering.",
			"Step 3: Add the protein and stir-fry for 3-4 minutes until golden brown and cooked through. Remove and set aside.",
			"Step 4: Add a bit more oil if needed, then add chopped vegetables (onions, peppers, carrots) and stir-fry for 2-3 minutes until crisp-tender.",
			"Step 5: Return the protein to the pan, add 2-3 tablespoons of soy sauce, minced garlic, and any additional seasonings.",
			"Step 6: Toss everything together and cook for 1 more minute. Serve hot over cooked rice or noodles.",
		},
		CookTime:   "25 minutes",
		Difficulty: "Easy",
		Servings:   "2 servings",
		Tips:       "For best results, make sure your pan is very hot before adding ingredients. Don't overcrowd the pan - cook in batches if needed.",
	}
}

func omeletteSuggestion(ingredients []string) domain.MealSuggestion {
	fillings := filterMatching(ingredients, []string{"cheese", "tomato", "onion", "pepper", "spinach", "mushroom"}, 4)

	omeletteIngredients := []domain.MealIngredient{
		{Name: "eggs", Amount: "3", Unit: "large"},
		{Name: "milk", Amount: "2", Unit: "tbsp"},
		{Name: "butter", Amount: "1", Unit: "tbsp"},
	}
	if anyMatch(fillings, []string{"cheese"}) {
		omeletteIngredients = append(omeletteIngredients, domain.MealIngredient{Name: "cheese", Amount: "1/4", Unit: "cup shredded"})
	}
	if anyMatch(fillings, []string{"tomato"}) {
		omeletteIngredients = append(omeletteIngredients, domain.MealIngredient{Name: "tomato", Amount: "1", Unit: "small diced"})
	}
	if anyMatch(fillings, []string{"spinach"}) {
		omeletteIngredients = append(omeletteIngredients, domain.MealIngredient{Name: "spinach", Amount: "1/2", Unit: "cup"})
	}

	return domain.MealSuggestion{
		Title:        "Fluffy Veggie Omelette",
		Ingredients:  omeletteIngredients,
		Instructions: "Beat eggs with a splash of milk, salt, and pepper. Heat butter in a non-stick pan over medium heat. Pour in eggs and let set slightly, then add your fillings to one half. Fold over and cook until just set. Serve with toast.",
		DetailedSteps: []string{
			"Step 1: Crack 2-3 eggs into a bowl, add 1-2 tablespoons of milk, and season with salt and pepper. Beat until well combined.",
			"Step 2: Heat 1 tablespoon of butter in a non-stick pan over medium-low heat until melted.",
			"Step 3: Pour the egg mixture into the pan and let it cook undisturbed for 30 seconds until the edges start to set.",
			"Step 4: Gently lift the edges with a spatula and tilt the pan to let uncooked egg flow to the edges.",
			"Step 5: Once the bottom is set but the top is still slightly runny, add your fillings (cheese, vegetables) to one half of the omelette.",
			"Step 6: Carefully fold the other half over the fillings and cook for 1 more minute. Slide onto a plate and serve immediately with toast.",
		},
		CookTime:   "15 minutes",
		Difficulty: "Easy",
		Servings:   "1 serving",
		Tips:       "The key to a fluffy omelette is low heat and patience. Don't rush the cooking process!",
	}
}

func saladSuggestion(saladMatches []string) domain.MealSuggestion {
	saladIngredients := make([]domain.MealIngredient, 0, 8)
	if anyMatch(saladMatches, []string{"lettuce"}) {
		saladIngredients = append(saladIngredients, domain.MealIngredient{Name: "lettuce", Amount: "4", Unit: "cups chopped"})
	}
	if anyMatch(saladMatches, []string{"tomato"}) {
		saladIngredients = append(saladIngredients, domain.MealIngredient{Name: "tomato", Amount: "2", Unit: "medium"})
	}
	if anyMatch(saladMatches, []string{"cucumber"}) {
		saladIngredients = append(saladIngredients, domain.MealIngredient{Name: "cucumber", Amount: "1", Unit: "medium"})
	}
	if anyMatch(saladMatches, []string{"pepper"}) {
		saladIngredients = append(saladIngredients, domain.MealIngredient{Name: "bell pepper", Amount: "1", Unit: "medium"})
	}
	if anyMatch(saladMatches, []string{"onion"}) {
		saladIngredients = append(saladIngredients, domain.MealIngredient{Name: "onion", Amount: "1/4", Unit: "cup sliced"})
	}
	if anyMatch(saladMatches, []string{"carrot"}) {
		saladIngredients = append(saladIngredients, domain.MealIngredient{Name: "carrot", Amount: "1", Unit: "medium"})
	}
	saladIngredients = append(saladIngredients,
		domain.MealIngredient{Name: "olive oil", Amount: "3", Unit: "tbsp"},
		domain.MealIngredient{Name: "lemon juice", Amount: "1", Unit: "tbsp"},
	)

	return domain.MealSuggestion{
		Title:        "Fresh Garden Salad",
		Ingredients:  saladIngredients,
		Instructions: "Wash and chop all vegetables into bite-sized pieces. Combine in a large bowl. Make a simple dressing with olive oil, lemon juice, salt, pepper, and herbs. Toss everything together and serve immediately.",
		DetailedSteps: []string{
			"Step 1: Wash all vegetables thoroughly under cold running water and pat dry.",
			"Step 2: Chop vegetables into bite-sized pieces - aim for uniform sizes for even eating.",
			"Step 3: Combine all chopped vegetables in a large salad bowl.",
			"Step 4: In a small bowl, whisk together 3 tablespoons olive oil, 1 tablespoon lemon juice, salt, pepper, and your favorite herbs (basil, oregano, or parsley work well).",
			"Step 5: Drizzle the dressing over the salad and toss gently to coat all ingredients.",
			"Step 6: Serve immediately for the freshest taste. Add cheese, nuts, or croutons as desired.",
		},
		CookTime:   "10 minutes",
		Difficulty: "Easy",
		Servings:   "2 servings",
		Tips:       "Add the dressing just before serving to keep the vegetables crisp. You can prepare the vegetables ahead of time and store them in the fridge.",
	}
}

func comfortBowlSuggestion(ingredients []string) domain.MealSuggestion {
	comfortIngredients := make([]domain.MealIngredient, 0, 5)
	for _, ingredient := range ingredients {
		if matchesAny(ingredient, carbKeywords) {
			comfortIngredients = append(comfortIngredients, domain.MealIngredient{Name: ingredient, Amount: "2", Unit: "cups cooked"})
			break
		}
	}
	if anyMatch(ingredients, []string{"tomato"}) {
		comfortIngredients = append(comfortIngredients, domain.MealIngredient{Name: "tomato", Amount: "2", Unit: "medium"})
	}
	if anyMatch(ingredients, []string{"onion"}) {
		comfortIngredients = append(comfortIngredients, domain.MealIngredient{Name: "onion", Amount: "1", Unit: "medium"})
	}
	if anyMatch(ingredients, []string{"garlic"}) {
		comfortIngredients = append(comfortIngredients, domain.MealIngredient{Name: "garlic", Amount: "2", Unit: "cloves"})
	}
	comfortIngredients = append(comfortIngredients, domain.MealIngredient{Name: "olive oil", Amount: "2", Unit: "tbsp"})

	return domain.MealSuggestion{
		Title:        "Comfort Bowl",
		Ingredients:  comfortIngredients,
		Instructions: "Cook your grain or pasta according to package directions. In a separate pan, saute vegetables and protein with olive oil and garlic. Combine everything in a bowl, drizzle with sauce of choice, and top with fresh herbs or cheese.",
		CookTime:     "30 minutes",
		Difficulty:   "Easy",
	}
}

func chefsSurpriseSuggestion(ingredients []string) domain.MealSuggestion {
	limit := len(ingredients)
	if limit > 5 {
		limit = 5
	}

	surpriseIngredients := make([]domain.MealIngredient, 0, limit)
	for idx, name := range ingredients[:limit] {
		unit := "piece"
		switch idx {
		case 0:
			unit = "cup"
		case 1:
			unit = "lb"
		}
		surpriseIngredients = append(surpriseIngredients, domain.MealIngredient{
			Name:   name,
			Amount: strconv.Itoa(idx + 1),
			Unit:   unit,
		})
	}

	return domain.MealSuggestion{
		Title:        "Chef's Surprise",
		Ingredients:  surpriseIngredients,
		Instructions: "Get creative! Combine your available ingredients in unexpected ways. Try roasting vegetables, making a quick sauce, or creating a grain bowl with whatever you have on hand.",
		CookTime:     "30 minutes",
		Difficulty:   "Medium",
	}
}

func onePotSuggestion(ingredients []string) domain.MealSuggestion {
	limit := len(ingredients)
	if limit > 6 {
		limit = 6
	}

	return domain.MealSuggestion{
		Title:        "Simple One-Pot Meal",
		Ingredients:  namesOnly(ingredients[:limit]),
		Instructions: "Add all ingredients to a large pot with broth or water. Season generously with salt, pepper, and herbs. Bring to a boil, then simmer until everything is tender. Adjust seasoning and serve hot.",
		CookTime:     "35 minutes",
		Difficulty:   "Easy",
	}
}
