package model

// Resource is a staff member who can hold at most one appointment at any
// instant. The roster is static; it is not user-editable at runtime.
type Resource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Color       string `json:"color"`
	BorderColor string `json:"borderColor"`
	Avatar      string `json:"avatar"`
}

var Resources = []Resource{
	{
		ID:          "1",
		Name:        "Марина",
		Email:       "marina@mio.ua",
		Color:       "bg-pink-100 hover:bg-pink-200 text-pink-800",
		BorderColor: "border-pink-400",
		Avatar:      "https://picsum.photos/100/100?random=1",
	},
	{
		ID:          "2",
		Name:        "Оля",
		Email:       "olya@mio.ua",
		Color:       "bg-teal-100 hover:bg-teal-200 text-teal-800",
		BorderColor: "border-teal-400",
		Avatar:      "https://picsum.photos/100/100?random=2",
	},
}

// ResourceByID returns the roster entry with the given id.
func ResourceByID(id string) (Resource, bool) {
	for _, r := range Resources {
		if r.ID == id {
			return r, true
		}
	}
	return Resource{}, false
}
