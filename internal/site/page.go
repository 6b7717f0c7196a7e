package site

import (
	"net/http"

	"github.com/sukrucan/portfolio/internal/content"
	"github.com/sukrucan/portfolio/internal/site/platform/admintoken"
	"github.com/sukrucan/portfolio/internal/site/platform/i18n"
	"github.com/sukrucan/portfolio/internal/site/templates"
)

// handleHome renders the portfolio page in the resolved language.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	lang := i18n.ResolveLanguage(w, r)
	view := s.pageView(lang)
	view.AdminSession = s.hasAdminSession(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Home(view).Render(r.Context(), w); err != nil {
		s.logger.Printf("render home: %v", err)
	}
}

func (s *Server) hasAdminSession(r *http.Request) bool {
	cookie, err := r.Cookie(admintoken.CookieName)
	if err != nil {
		return false
	}
	return admintoken.Verify(s.secret, cookie.Value) == nil
}

// pageView resolves every field of the portfolio page against the content
// cache for lang. Resolution misses fall through to the static dictionary,
// so the page renders complete even before the first content load.
func (s *Server) pageView(lang string) templates.PageView {
	e := s.engine
	return templates.PageView{
		Lang: lang,
		Nav: templates.NavView{
			Welcome:  e.Text(lang, "nav_welcome"),
			Career:   e.Text(lang, "nav_career"),
			Blog:     e.Text(lang, "nav_blog"),
			Projects: e.Text(lang, "nav_projects"),
			WhoAmI:   e.Text(lang, "nav_whoami"),
			Contact:  e.Text(lang, "nav_contact"),
			Lang:     lang,
			AltLang:  altLang(lang),
		},
		Hero: templates.HeroView{
			Welcome:     e.Text(lang, "hero_welcome"),
			Title:       e.Text(lang, "hero_title"),
			Description: e.Text(lang, "hero_description"),
			Skills:      e.Strings(lang, "skills"),
		},
		CareerTitle:         e.Text(lang, "career_title"),
		CareerEntries:       entryViews(e.Items(lang, "career_list")),
		CareerDetailsFooter: e.Text(lang, "career_details_footer"),
		WhatIDo:             cardViews(e.Items(lang, "what_i_do")),
		Toolbox:             nameList(e.Items(lang, "toolbox")),
		BlogTitle:           e.Text(lang, "blog_title"),
		BlogLink:            e.Text(lang, "blog_link"),
		BlogEntries:         entryViews(e.Items(lang, "blog_list")),
		ProjectsAwardsTitle: e.Text(lang, "projects_awards_title"),
		ProjectsAwardsHTML:  e.Text(lang, "projects_awards_content"),
		About: templates.AboutView{
			Badge:    e.Text(lang, "about_badge"),
			Title:    e.Text(lang, "about_title"),
			ImageURL: e.Text(lang, "about_image"),
			Text:     e.Text(lang, "about_text"),
		},
		ContactTitle:    e.Text(lang, "contact_title"),
		ContactSubtitle: e.Text(lang, "contact_subtitle"),
		ContactButton:   e.Text(lang, "contact_btn"),
		Social: templates.SocialView{
			LinkedIn: e.Text(lang, "social.linkedin"),
			GitHub:   e.Text(lang, "social.github"),
			Email:    e.Text(lang, "social.email"),
		},
		Footer: templates.FooterView{
			TitleLine1: e.Text(lang, "footer_title_line1"),
			TitleLine2: e.Text(lang, "footer_title_line2"),
			Desc:       e.Text(lang, "footer_desc"),
			Joke:       e.Text(lang, "footer_joke"),
		},
	}
}

func altLang(lang string) string {
	for _, tag := range i18n.SupportedTags() {
		if code := i18n.Code(tag); code != lang {
			return code
		}
	}
	return lang
}

func entryViews(items []content.Item) []templates.EntryView {
	views := make([]templates.EntryView, 0, len(items))
	for _, item := range items {
		views = append(views, templates.EntryView{
			ID:          item.ID,
			Title:       content.Text(item.Fields["title"]),
			Subtitle:    content.Text(item.Fields["company"]),
			Period:      content.Text(item.Fields["date"]),
			Description: content.Text(item.Fields["description"]),
		})
	}
	return views
}

func cardViews(items []content.Item) []templates.CardView {
	views := make([]templates.CardView, 0, len(items))
	for _, item := range items {
		views = append(views, templates.CardView{
			Title:       content.Text(item.Fields["title"]),
			Description: content.Text(item.Fields["description"]),
		})
	}
	return views
}

func nameList(items []content.Item) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, content.Text(item.Fields["name"]))
	}
	return names
}
