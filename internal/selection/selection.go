// Package selection holds the immutable user selection produced when the wizard finishes.
package selection

import "slices"

// Item is one saved page or feature: the instance name chosen by the user and the
// catalog template it was created from.
type Item struct {
	Name       string `toml:"name" yaml:"name" json:"name"`
	TemplateID string `toml:"template" yaml:"template" json:"template"`
}

// UserSelection is the final wizard output consumed by the generator.
// It is built once with New and never mutated; accessors return copies.
type UserSelection struct {
	projectType string
	framework   string
	homeName    string
	pages       []Item
	features    []Item
}

// New builds a UserSelection. pages and features are copied, so later changes to the
// caller's slices do not leak into the selection.
func New(projectType, framework, homeName string, pages, features []Item) UserSelection {
	return UserSelection{
		projectType: projectType,
		framework:   framework,
		homeName:    homeName,
		pages:       slices.Clone(pages),
		features:    slices.Clone(features),
	}
}

// ProjectType returns the selected project type name.
func (s UserSelection) ProjectType() string { return s.projectType }

// Framework returns the selected framework name.
func (s UserSelection) Framework() string { return s.framework }

// HomeName returns the home page name.
func (s UserSelection) HomeName() string { return s.homeName }

// Pages returns the saved pages in selection order.
func (s UserSelection) Pages() []Item { return slices.Clone(s.pages) }

// Features returns the saved features in selection order.
func (s UserSelection) Features() []Item { return slices.Clone(s.features) }

// Items returns pages followed by features, each group in selection order.
func (s UserSelection) Items() []Item {
	items := make([]Item, 0, len(s.pages)+len(s.features))
	items = append(items, s.pages...)
	return append(items, s.features...)
}

// Document is the encodable form of a UserSelection.
type Document struct {
	ProjectType string `toml:"project_type" yaml:"project_type" json:"project_type"`
	Framework   string `toml:"framework" yaml:"framework" json:"framework"`
	HomeName    string `toml:"home_name" yaml:"home_name" json:"home_name"`
	Pages       []Item `toml:"pages" yaml:"pages" json:"pages"`
	Features    []Item `toml:"features" yaml:"features" json:"features"`
}

// Document returns an encodable copy of the selection. Nil item lists are
// normalized to empty lists so every format emits the keys.
func (s UserSelection) Document() Document {
	doc := Document{
		ProjectType: s.projectType,
		Framework:   s.framework,
		HomeName:    s.homeName,
		Pages:       s.Pages(),
		Features:    s.Features(),
	}
	if doc.Pages == nil {
		doc.Pages = []Item{}
	}
	if doc.Features == nil {
		doc.Features = []Item{}
	}
	return doc
}
