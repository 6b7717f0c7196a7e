package content

// Fallback returns the compile-time bilingual dictionary used when the
// dynamic document has not loaded or misses a key. It shares the document's
// path-addressing semantics and exists so the rendered page never shows a
// blank value.
func Fallback() Document {
	return Document{
		"tr": {
			"nav_welcome":            Scalar{Val: "Hoşgeldin"},
			"nav_career":             Scalar{Val: "Kariyer"},
			"nav_blog":               Scalar{Val: "Blog"},
			"nav_projects":           Scalar{Val: "Projeler"},
			"nav_whoami":             Scalar{Val: "Ben Kimim?"},
			"nav_contact":            Scalar{Val: "İletişim"},
			"career_title":           Scalar{Val: "Mesleki Yolculuğum"},
			"career_list":            Sequence{},
			"career_details_footer":  Scalar{Val: "Bu görev süresince stratejik kararları veri odaklı bir yaklaşımla destekledim."},
			"hero_welcome":           Scalar{Val: "Selam, ben Şükrücan."},
			"hero_title":             Scalar{Val: "Verinin Dilini Konuşuyor, Geleceği Analiz Ediyorum."},
			"hero_description":       Scalar{Val: "Araştırmacı, sorgulayıcı ve çözüm odaklı bir veri analisti."},
			"skills":                 Sequence{Scalar{Val: "SQL & Python"}, Scalar{Val: "Artificial Intelligence & LLM Agents"}, Scalar{Val: "İstatistiksel Modelleme"}, Scalar{Val: "CRM & Veri Analitiği"}},
			"blog_title":             Scalar{Val: "Blog Yazılarım"},
			"blog_link":              Scalar{Val: "Detayları Gör"},
			"blog_list":              Sequence{},
			"projects_awards_title":  Scalar{Val: "Projeler ve Ödüller"},
			"projects_awards_content": Scalar{Val: "<ul><li>Önemli Proje 1</li><li>Başarı / Ödül 1</li></ul>"},
			"social": Mapping{
				"linkedin": Scalar{Val: ""},
				"github":   Scalar{Val: ""},
				"email":    Scalar{Val: ""},
			},
			"about_badge":       Scalar{Val: "HAKKIMDA"},
			"about_title":       Scalar{Val: "Veriye Duyulan Merak, Analizle Gelen Çözüm"},
			"about_image":       Scalar{Val: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?auto=format&fit=crop&w=800&q=80"},
			"about_text":        Scalar{Val: "Yüksek doğruluk odaklı bir Veri Analisti olarak, karmaşık süreçleri daha hassas ve işlevsel hale getiren veri odaklı çözümler geliştiriyorum."},
			"contact_title":     Scalar{Val: "Verilerinizi birlikte inceleyelim."},
			"contact_subtitle":  Scalar{Val: "Bir projeniz mi var? Bir kahve eşliğinde analiz yapmaya ne dersiniz?"},
			"contact_btn":       Scalar{Val: "Analize Başlayalım"},
			"footer_title_line1": Scalar{Val: "Geleceği Birlikte"},
			"footer_title_line2": Scalar{Val: "Hayal Edelim."},
			"footer_desc":       Scalar{Val: "Veri analizinden stratejik danışmanlığa kadar her adımda yanınızdayım."},
			"footer_joke":       Scalar{Val: "Buradaki tüm analizler, %95 güven aralığında titizlikle hazırlanmıştır. 😉"},
			"what_i_do": Sequence{
				Mapping{"title": Scalar{Val: "VERİ GÖRSELLEŞTİRME"}, "description": Scalar{Val: "Karmaşık tabloları herkesin anlayabileceği interaktif dashboard'lara dönüştürüyorum."}},
				Mapping{"title": Scalar{Val: "İSTATİSTİKSEL ANALİZ"}, "description": Scalar{Val: "Hipotez testleri ve modellemelerle belirsizliği azaltıyorum."}},
				Mapping{"title": Scalar{Val: "STRATEJİK DANIŞMANLIK"}, "description": Scalar{Val: "Veriye dayalı önerilerle karar vericilere yol gösteriyorum."}},
			},
			"toolbox": Sequence{
				Mapping{"name": Scalar{Val: "SQL"}}, Mapping{"name": Scalar{Val: "PYTHON"}}, Mapping{"name": Scalar{Val: "TABLEAU"}},
				Mapping{"name": Scalar{Val: "POWER BI"}}, Mapping{"name": Scalar{Val: "EXCEL"}}, Mapping{"name": Scalar{Val: "İSTATİSTİK"}},
				Mapping{"name": Scalar{Val: "MAKİNE ÖĞRENMESİ"}}, Mapping{"name": Scalar{Val: "YAPAY ZEKA"}}, Mapping{"name": Scalar{Val: "BIGQUERY"}},
				Mapping{"name": Scalar{Val: "LOOKER"}}, Mapping{"name": Scalar{Val: "CRM ANALİTİĞİ"}},
			},
		},
		"en": {
			"nav_welcome":            Scalar{Val: "Welcome"},
			"nav_career":             Scalar{Val: "Career"},
			"nav_blog":               Scalar{Val: "Blog"},
			"nav_projects":           Scalar{Val: "Projects"},
			"nav_whoami":             Scalar{Val: "Who am I?"},
			"nav_contact":            Scalar{Val: "Contact"},
			"career_title":           Scalar{Val: "Professional Journey"},
			"career_list":            Sequence{},
			"career_details_footer":  Scalar{Val: "During this tenure, I supported strategic decisions with a data-driven approach."},
			"hero_welcome":           Scalar{Val: "Hi, I'm Şükrücan."},
			"hero_title":             Scalar{Val: "Speaking the Language of Data, Analyzing the Future."},
			"hero_description":       Scalar{Val: "An investigative, curious and solution-driven data analyst."},
			"skills":                 Sequence{Scalar{Val: "SQL & Python"}, Scalar{Val: "Artificial Intelligence & LLM Agents"}, Scalar{Val: "Statistical Modeling"}, Scalar{Val: "CRM & Data Analytics"}},
			"blog_title":             Scalar{Val: "My Blog Posts"},
			"blog_link":              Scalar{Val: "View Details"},
			"blog_list":              Sequence{},
			"projects_awards_title":  Scalar{Val: "Projects & Awards"},
			"projects_awards_content": Scalar{Val: "<ul><li>Major Project 1</li><li>Achievement / Award 1</li></ul>"},
			"social": Mapping{
				"linkedin": Scalar{Val: ""},
				"github":   Scalar{Val: ""},
				"email":    Scalar{Val: ""},
			},
			"about_badge":       Scalar{Val: "ABOUT ME"},
			"about_title":       Scalar{Val: "Curiosity for Data, Solution through Analysis"},
			"about_image":       Scalar{Val: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?auto=format&fit=crop&w=800&q=80"},
			"about_text":        Scalar{Val: "As a high-accuracy Data Analyst, I develop data-driven solutions that make complex processes more precise and functional."},
			"contact_title":     Scalar{Val: "Let's examine your data together."},
			"contact_subtitle":  Scalar{Val: "Have a project? How about an analysis over a cup of coffee?"},
			"contact_btn":       Scalar{Val: "Start Analysis"},
			"footer_title_line1": Scalar{Val: "Imagine the Future"},
			"footer_title_line2": Scalar{Val: "Together."},
			"footer_desc":       Scalar{Val: "I am with you every step of the way, from data analysis to strategic consultancy."},
			"footer_joke":       Scalar{Val: "All analyses here have been meticulously prepared within a 95% confidence interval. 😉"},
			"what_i_do": Sequence{
				Mapping{"title": Scalar{Val: "DATA VISUALIZATION"}, "description": Scalar{Val: "Transforming complex tables into interactive dashboards anyone can understand."}},
				Mapping{"title": Scalar{Val: "STATISTICAL ANALYSIS"}, "description": Scalar{Val: "Reducing uncertainty through hypothesis testing and modeling."}},
				Mapping{"title": Scalar{Val: "STRATEGIC CONSULTANCY"}, "description": Scalar{Val: "Guiding decision-makers with data-driven recommendations."}},
			},
			"toolbox": Sequence{
				Mapping{"name": Scalar{Val: "SQL"}}, Mapping{"name": Scalar{Val: "PYTHON"}}, Mapping{"name": Scalar{Val: "TABLEAU"}},
				Mapping{"name": Scalar{Val: "POWER BI"}}, Mapping{"name": Scalar{Val: "EXCEL"}}, Mapping{"name": Scalar{Val: "STATISTICS"}},
				Mapping{"name": Scalar{Val: "MACHINE LEARNING"}}, Mapping{"name": Scalar{Val: "ARTIFICIAL INTELLIGENCE"}}, Mapping{"name": Scalar{Val: "BIGQUERY"}},
				Mapping{"name": Scalar{Val: "LOOKER"}}, Mapping{"name": Scalar{Val: "CRM ANALYTICS"}},
			},
		},
	}
}
