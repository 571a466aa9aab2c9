package httpserver

import (
	"strconv"

	"github.com/RustamYuburov/inventory-application/internal/catalog"
	"github.com/RustamYuburov/inventory-application/internal/forms"
)

// gameFormData is what the game form template renders: everything as
// strings, so a failed submission and a stored record fill the same
// fields.
type gameFormData struct {
	Title     string
	Developer string
	Summary   string
	Genre     []string
	Price     string
	Stock     string
}

func gameFormFromCandidate(cand forms.GameCandidate) gameFormData {
	return gameFormData{
		Title:     cand.Title,
		Developer: cand.Developer,
		Summary:   cand.Summary,
		Genre:     cand.Genre,
		Price:     cand.Price,
		Stock:     cand.Stock,
	}
}

func gameFormFromGame(g *catalog.Game) gameFormData {
	genres := make([]string, len(g.Genre))
	for i, id := range g.Genre {
		genres[i] = id.Hex()
	}
	return gameFormData{
		Title:     g.Title,
		Developer: g.Developer.Hex(),
		Summary:   g.Summary,
		Genre:     genres,
		Price:     strconv.FormatFloat(g.Price, 'f', 2, 64),
		Stock:     strconv.Itoa(g.InStock),
	}
}

type developerFormData struct {
	Name        string
	Description string
}

type genreFormData struct {
	Name string
}
