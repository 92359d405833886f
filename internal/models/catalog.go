// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package models

// Person represents a person from the Star Wars universe as served by
// GET /api/people. Field names match the upstream /people schema, plus the
// derived HomeworldName.
//
// Example:
//
//	{
//	  "name": "Luke Skywalker",
//	  "height": "172",
//	  "homeworld": "https://swapi.info/api/planets/1",
//	  "homeworld_name": "Tatooine",
//	  "created": "2014-12-09T13:50:51.644000Z"
//	}
type Person struct {
	Name          string   `json:"name"`
	Height        string   `json:"height,omitempty"`
	Mass          string   `json:"mass,omitempty"`
	HairColor     string   `json:"hair_color,omitempty"`
	SkinColor     string   `json:"skin_color,omitempty"`
	EyeColor      string   `json:"eye_color,omitempty"`
	BirthYear     string   `json:"birth_year,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	Homeworld     *string  `json:"homeworld"`
	HomeworldName string   `json:"homeworld_name"`
	Films         []string `json:"films"`
	Species       []string `json:"species"`
	Vehicles      []string `json:"vehicles"`
	Starships     []string `json:"starships"`
	Created       string   `json:"created"`
	Edited        *string  `json:"edited"`
	URL           *string  `json:"url"`
}

// Normalize replaces nil lists with empty ones so they serialize as [].
func (p *Person) Normalize() {
	p.Films = nonNil(p.Films)
	p.Species = nonNil(p.Species)
	p.Vehicles = nonNil(p.Vehicles)
	p.Starships = nonNil(p.Starships)
}

// Planet represents a planet as served by GET /api/planets.
type Planet struct {
	Name           string   `json:"name"`
	RotationPeriod string   `json:"rotation_period,omitempty"`
	OrbitalPeriod  string   `json:"orbital_period,omitempty"`
	Diameter       string   `json:"diameter,omitempty"`
	Climate        string   `json:"climate,omitempty"`
	Gravity        string   `json:"gravity,omitempty"`
	Terrain        string   `json:"terrain,omitempty"`
	SurfaceWater   string   `json:"surface_water,omitempty"`
	Population     string   `json:"population,omitempty"`
	Residents      []string `json:"residents"`
	Films          []string `json:"films"`
	Created        string   `json:"created"`
	Edited         *string  `json:"edited"`
	URL            *string  `json:"url"`
}

// Normalize replaces nil lists with empty ones so they serialize as [].
func (p *Planet) Normalize() {
	p.Residents = nonNil(p.Residents)
	p.Films = nonNil(p.Films)
}

// PaginatedResponse is the listing envelope returned by /api/people and
// /api/planets. Next and Previous serialize as null when absent.
type PaginatedResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Insight is the mock AI insight payload for a single catalog entry.
type Insight struct {
	Resource string `json:"resource"`
	Name     string `json:"name"`
	Insight  string `json:"insight"`
}

// WelcomeMessage is returned by the API root.
type WelcomeMessage struct {
	Message string `json:"message"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
