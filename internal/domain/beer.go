package domain

// Beer is a competition entry as served by the external submission catalog.
// The voting core only stores BeerID; everything else is display data.
type Beer struct {
	BeerID          string  `json:"beer_id"`
	UserID          string  `json:"user_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Brewer          string  `json:"brewer"`
	Style           string  `json:"style"`
	Alcohol         float64 `json:"alcohol"`
	OriginalGravity float64 `json:"original_gravity"`
	IBU             float64 `json:"ibu"`
	RecipeLink      string  `json:"recipe_link"`
}
