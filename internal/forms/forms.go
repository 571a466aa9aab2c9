// Package forms runs the per-entity field rules against raw form input.
// Each Validate function applies its rules in order and returns a
// sanitized candidate plus the field errors; an empty error list means the
// candidate is safe to persist. Sanitization (trim + HTML escape) happens
// even when validation fails so a re-rendered form shows the sanitized
// value, not the raw one.
package forms

// FieldError is a single rule violation, in rule order.
type FieldError struct {
	Field   string
	Message string
}

// GameForm is the raw game form body.
type GameForm struct {
	Title     string
	Developer string
	Summary   string
	Genre     []string
	Price     string
	Stock     string
}

// GameCandidate is the sanitized form plus the parsed numeric fields.
// PriceValue and StockValue are only meaningful when validation passed.
type GameCandidate struct {
	GameForm
	PriceValue float64
	StockValue int
}

// ValidateGame applies the game field rules in order.
func ValidateGame(f GameForm) (GameCandidate, []FieldError) {
	f.trim()
	var errs []FieldError
	if !lengthIn(f.Title, 2, 200) {
		errs = append(errs, FieldError{"title", "Game title must be at least 2 characters in length"})
	}
	if !lengthIn(f.Developer, 1, 0) {
		errs = append(errs, FieldError{"developer", "Game developer must be specified."})
	}
	if !lengthIn(f.Summary, 2, 2000) {
		errs = append(errs, FieldError{"summary", "Game summary must be specified."})
	}
	price, ok := floatIn(f.Price, 0, 99999)
	if !ok {
		errs = append(errs, FieldError{"price", "Price must be between $0 and $99999."})
	}
	stock, ok := intIn(f.Stock, 0, 9999)
	if !ok {
		errs = append(errs, FieldError{"stock", "Stock cannot be lower than 0."})
	}
	f.escape()
	return GameCandidate{GameForm: f, PriceValue: price, StockValue: stock}, errs
}

func (f *GameForm) trim() {
	f.Title = trim(f.Title)
	f.Developer = trim(f.Developer)
	f.Summary = trim(f.Summary)
	f.Price = trim(f.Price)
	f.Stock = trim(f.Stock)
	// A single scalar selection arrives as a one-element list; nil means
	// nothing was selected. Copy so the caller's slice is left alone.
	genre := make([]string, len(f.Genre))
	for i, g := range f.Genre {
		genre[i] = trim(g)
	}
	f.Genre = genre
}

func (f *GameForm) escape() {
	f.Title = escape(f.Title)
	f.Developer = escape(f.Developer)
	f.Summary = escape(f.Summary)
	for i := range f.Genre {
		f.Genre[i] = escape(f.Genre[i])
	}
}

// DeveloperForm is the raw developer form body.
type DeveloperForm struct {
	Name        string
	Description string
}

// ValidateDeveloper applies the developer field rules in order and
// returns the sanitized form.
func ValidateDeveloper(f DeveloperForm) (DeveloperForm, []FieldError) {
	f.Name = trim(f.Name)
	f.Description = trim(f.Description)
	var errs []FieldError
	if !lengthIn(f.Name, 2, 100) {
		errs = append(errs, FieldError{"name", "Developer name should be at least 2 characters long."})
	}
	if !lengthIn(f.Description, 2, 2000) {
		errs = append(errs, FieldError{"description", "Developer description must be specified."})
	}
	f.Name = escape(f.Name)
	f.Description = escape(f.Description)
	return f, errs
}

// GenreForm is the raw genre form body.
type GenreForm struct {
	Name string
}

// ValidateGenre applies the genre field rules and returns the sanitized
// form.
func ValidateGenre(f GenreForm) (GenreForm, []FieldError) {
	f.Name = trim(f.Name)
	var errs []FieldError
	if !lengthIn(f.Name, 2, 100) {
		errs = append(errs, FieldError{"name", "Genre name should be at least 2 characters long."})
	}
	f.Name = escape(f.Name)
	return f, errs
}
