package domain

// Post mirrors the API's post record. UserID is a string on the wire even
// though user IDs are numeric elsewhere; the ownership check converts when
// comparing against the signed-in user's ID.
type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	PhotoURL  string `json:"photoUrl"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}
