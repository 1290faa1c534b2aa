package loader

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/multiquest/engine/state"
	"github.com/nathoo/multiquest/types"
)

// ErrUnknownTitle is returned when neither the requested title nor the
// default title is loaded.
var ErrUnknownTitle = errors.New("unknown title")

// Library holds loaded title templates and instantiates sessions from them.
type Library struct {
	titles       map[string]*types.Title
	defaultTitle string
	playerName   string
}

// NewLibrary indexes titles by id. Later titles replace earlier ones with
// the same id, so disk titles can override built-in ones.
func NewLibrary(defaultTitle, playerName string, sets ...[]*types.Title) (*Library, error) {
	l := &Library{
		titles:       map[string]*types.Title{},
		defaultTitle: strings.ToLower(defaultTitle),
		playerName:   playerName,
	}
	for _, set := range sets {
		for _, t := range set {
			l.titles[strings.ToLower(t.ID)] = t
		}
	}
	if _, ok := l.titles[l.defaultTitle]; !ok {
		return nil, fmt.Errorf("default title %q: %w", defaultTitle, ErrUnknownTitle)
	}
	return l, nil
}

// Title returns the template for id, falling back to the default title.
func (l *Library) Title(id string) (*types.Title, error) {
	if t, ok := l.titles[strings.ToLower(id)]; ok {
		return t, nil
	}
	if t, ok := l.titles[l.defaultTitle]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%q: %w", id, ErrUnknownTitle)
}

// Instantiate creates a fresh session for a title.
func (l *Library) Instantiate(id string) (*types.Session, error) {
	t, err := l.Title(id)
	if err != nil {
		return nil, err
	}
	return state.NewSession(t, l.playerName), nil
}

// Titles returns the loaded titles ordered by id.
func (l *Library) Titles() []*types.Title {
	out := make([]*types.Title, 0, len(l.titles))
	for _, t := range l.titles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Default returns the default title id.
func (l *Library) Default() string {
	return l.defaultTitle
}
