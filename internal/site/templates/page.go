// Package templates renders the portfolio page. Components are plain Go so
// the view layer stays a function of PageView; text fields are escaped and
// only fields documented as rich text render raw markup.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// NavView holds the navigation labels and language switcher state.
type NavView struct {
	Welcome  string
	Career   string
	Blog     string
	Projects string
	WhoAmI   string
	Contact  string
	Lang     string
	AltLang  string
}

// HeroView holds the opening section.
type HeroView struct {
	Welcome     string
	Title       string
	Description string
	Skills      []string
}

// CardView is one what-I-do card.
type CardView struct {
	Title       string
	Description string
}

// EntryView is one career or blog entry.
type EntryView struct {
	ID          string
	Title       string
	Subtitle    string
	Period      string
	Description string
}

// AboutView holds the about section.
type AboutView struct {
	Badge    string
	Title    string
	ImageURL string
	Text     string
}

// SocialView holds the external profile links.
type SocialView struct {
	LinkedIn string
	GitHub   string
	Email    string
}

// FooterView holds the closing section.
type FooterView struct {
	TitleLine1 string
	TitleLine2 string
	Desc       string
	Joke       string
}

// PageView is everything the portfolio page needs, fully resolved for one
// language.
type PageView struct {
	Lang                string
	Nav                 NavView
	Hero                HeroView
	CareerTitle         string
	CareerEntries       []EntryView
	CareerDetailsFooter string
	WhatIDo             []CardView
	Toolbox             []string
	BlogTitle           string
	BlogLink            string
	BlogEntries         []EntryView
	ProjectsAwardsTitle string
	// ProjectsAwardsHTML is admin-authored rich text and renders unescaped.
	ProjectsAwardsHTML string
	About              AboutView
	ContactTitle       string
	ContactSubtitle    string
	ContactButton      string
	Social             SocialView
	Footer             FooterView
	AdminSession       bool
}

// Home renders the full portfolio page.
func Home(view PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, "<!DOCTYPE html><html lang=%q><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>%s</title><link rel=\"stylesheet\" href=\"/static/site.css\"></head><body%s>",
			esc(view.Lang), esc(view.Hero.Welcome), adminAttr(view.AdminSession)); err != nil {
			return err
		}
		sections := []templ.Component{
			nav(view.Nav),
			hero(view.Hero),
			cards("what-i-do", view.WhatIDo),
			entries("career", view.CareerTitle, view.CareerEntries, view.CareerDetailsFooter, ""),
			toolbox(view.Toolbox),
			entries("blog", view.BlogTitle, view.BlogEntries, "", view.BlogLink),
			projectsAwards(view.ProjectsAwardsTitle, view.ProjectsAwardsHTML),
			about(view.About),
			contact(view.ContactTitle, view.ContactSubtitle, view.ContactButton),
			footer(view.Footer, view.Social),
		}
		for _, section := range sections {
			if err := section.Render(ctx, w); err != nil {
				return err
			}
		}
		return writef(w, "</body></html>")
	})
}

func nav(view NavView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w, "<nav class=\"site-nav\"><ul>"); err != nil {
			return err
		}
		links := []struct{ href, label string }{
			{"#hero", view.Welcome},
			{"#career", view.Career},
			{"#blog", view.Blog},
			{"#projects", view.Projects},
			{"#about", view.WhoAmI},
			{"#contact", view.Contact},
		}
		for _, link := range links {
			if err := writef(w, "<li><a href=%q>%s</a></li>", link.href, esc(link.label)); err != nil {
				return err
			}
		}
		return writef(w, "</ul><a class=\"lang-switch\" href=\"?lang=%s\">%s</a></nav>",
			esc(view.AltLang), esc(strings.ToUpper(view.AltLang)))
	})
}

func hero(view HeroView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w, "<section id=\"hero\"><p class=\"hero-welcome\" data-path=\"hero_welcome\">%s</p><h1 data-path=\"hero_title\">%s</h1><p class=\"hero-desc\" data-path=\"hero_description\">%s</p><ul class=\"skills\">",
			esc(view.Welcome), esc(view.Title), esc(view.Description)); err != nil {
			return err
		}
		for _, skill := range view.Skills {
			if err := writef(w, "<li>%s</li>", esc(skill)); err != nil {
				return err
			}
		}
		return writef(w, "</ul></section>")
	})
}

func cards(sectionID string, items []CardView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w, "<section id=%q class=\"cards\">", sectionID); err != nil {
			return err
		}
		for _, item := range items {
			if err := writef(w, "<article><h3>%s</h3><p>%s</p></article>",
				esc(item.Title), esc(item.Description)); err != nil {
				return err
			}
		}
		return writef(w, "</section>")
	})
}

func entries(sectionID, title string, items []EntryView, footerText, linkLabel string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w, "<section id=%q><h2>%s</h2><ul class=\"entries\" data-path=\"%s_list\">",
			sectionID, esc(title), sectionID); err != nil {
			return err
		}
		for _, item := range items {
			if err := writef(w, "<li data-id=%q><h3>%s</h3>", esc(item.ID), esc(item.Title)); err != nil {
				return err
			}
			if item.Subtitle != "" {
				if err := writef(w, "<p class=\"entry-subtitle\">%s</p>", esc(item.Subtitle)); err != nil {
					return err
				}
			}
			if item.Period != "" {
				if err := writef(w, "<p class=\"entry-period\">%s</p>", esc(item.Period)); err != nil {
					return err
				}
			}
			if item.Description != "" {
				if err := writef(w, "<p>%s</p>", esc(item.Description)); err != nil {
					return err
				}
			}
			if linkLabel != "" {
				if err := writef(w, "<a class=\"entry-link\" href=\"#%s\">%s</a>", esc(item.ID), esc(linkLabel)); err != nil {
					return err
				}
			}
			if err := writef(w, "</li>"); err != nil {
				return err
			}
		}
		if err := writef(w, "</ul>"); err != nil {
			return err
		}
		if footerText != "" {
			if err := writef(w, "<p class=\"section-footer\">%s</p>", esc(footerText)); err != nil {
				return err
			}
		}
		return writef(w, "</section>")
	})
}

func toolbox(names []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w, "<section id=\"toolbox\"><ul class=\"toolbox\" data-path=\"toolbox\">"); err != nil {
			return err
		}
		for _, name := range names {
			if err := writef(w, "<li>%s</li>", esc(name)); err != nil {
				return err
			}
		}
		return writef(w, "</ul></section>")
	})
}

func projectsAwards(title, rawHTML string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, "<section id=\"projects\"><h2>%s</h2><div class=\"rich-text\" data-path=\"projects_awards_content\">", esc(title)); err != nil {
			return err
		}
		if err := templ.Raw(rawHTML).Render(ctx, w); err != nil {
			return err
		}
		return writef(w, "</div></section>")
	})
}

func about(view AboutView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writef(w, "<section id=\"about\"><span class=\"badge\">%s</span><h2 data-path=\"about_title\">%s</h2><img src=%q alt=\"\"><p data-path=\"about_text\">%s</p></section>",
			esc(view.Badge), esc(view.Title), esc(view.ImageURL), esc(view.Text))
	})
}

func contact(title, subtitle, button string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writef(w, "<section id=\"contact\"><h2 data-path=\"contact_title\">%s</h2><p data-path=\"contact_subtitle\">%s</p><a class=\"contact-btn\" href=\"#contact\">%s</a></section>",
			esc(title), esc(subtitle), esc(button))
	})
}

func footer(view FooterView, social SocialView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w, "<footer><h2>%s<br>%s</h2><p>%s</p><ul class=\"social\">",
			esc(view.TitleLine1), esc(view.TitleLine2), esc(view.Desc)); err != nil {
			return err
		}
		links := []struct{ label, href string }{
			{"LinkedIn", social.LinkedIn},
			{"GitHub", social.GitHub},
			{"Email", mailto(social.Email)},
		}
		for _, link := range links {
			if link.href == "" {
				continue
			}
			if err := writef(w, "<li><a href=%q rel=\"noopener\">%s</a></li>", esc(link.href), esc(link.label)); err != nil {
				return err
			}
		}
		return writef(w, "</ul><p class=\"footer-joke\">%s</p></footer>", esc(view.Joke))
	})
}

func mailto(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	if strings.HasPrefix(addr, "mailto:") {
		return addr
	}
	return "mailto:" + addr
}

func adminAttr(admin bool) string {
	if admin {
		return " data-admin=\"true\""
	}
	return ""
}

func esc(value string) string {
	return html.EscapeString(value)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
