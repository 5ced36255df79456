package domain

type Book struct {
	ID          string
	Title       string
	Author      string
	Description string
	Category    string
	Language    string
	TotalPages  int
}
