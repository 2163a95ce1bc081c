package course

// Catalog is the bundled course content. It is defined once and never
// mutated at runtime; TestCatalogValid asserts its integrity.
var Catalog = Course{
	Title:       "Monday.com CRM Development Masterclass",
	Description: "A comprehensive path from beginner to advanced Monday.com app development, featuring API mastery and framework certification.",
	Modules: []Module{
		{
			ID:          "mod-01",
			Title:       "Beginner: CRM Fundamentals",
			Description: "Master the core structure of Monday.com CRM before writing code.",
			Lessons: []Lesson{
				{
					ID:          "less-01-01",
					Title:       "Introduction to Monday.com CRM for Developers",
					Description: "A complete overview of the CRM structure (leads, deals, accounts) and how to integrate apps. Understand the unique features like the activities timeline.",
					Type:        TypeVideo,
					Media:       &Media{Provider: ProviderYouTube, VideoID: "2uYCzXhs2t0"},
					Duration:    "14:00",
					Resources: []Resource{
						{Title: "Monday.com CRM Product Page", URL: "https://monday.com/crm"},
					},
				},
				{
					ID:          "less-01-02",
					Title:       "Complete CRM Tutorial 2025",
					Description: "Exhaustive guide covering boards, forms, automations, email sequences, and sales dashboards.",
					Type:        TypeVideo,
					Media:       &Media{Provider: ProviderYouTube, VideoID: "2FI0vkcjB-E"},
					Duration:    "43:00",
				},
				{
					ID:          "less-01-03",
					Title:       "CRM Comprehensive Guide",
					Description: "A text-based deep dive to consolidate your knowledge of CRM features.",
					Type:        TypeArticle,
					ContentURL:  "https://addtocrm.com/how-to-use-crm/monday-crm",
					Duration:    "15 min read",
				},
			},
		},
		{
			ID:          "mod-02",
			Title:       "Intermediate: API & GraphQL",
			Description: "Learn to manipulate Monday.com data programmatically using GraphQL.",
			Lessons: []Lesson{
				{
					ID:          "less-02-01",
					Title:       "GraphQL API Quickstart",
					Description: "Learn to access the API Playground, authenticate, and make your first query in 5 minutes.",
					Type:        TypeVideo,
					Media:       &Media{Provider: ProviderYouTube, VideoID: "oSDegxHokLo"},
					Duration:    "05:00",
					Resources: []Resource{
						{Title: "API Playground", URL: "https://monday.com/developers/v2/try-it-yourself"},
					},
				},
				{
					ID:          "less-02-02",
					Title:       "Mastering GraphQL in 15 Minutes",
					Description: "Deep dive into complex queries, filtering data, and performing mutations.",
					Type:        TypeVideo,
					Media:       &Media{Provider: ProviderYouTube, VideoID: "uFSPSfVID1g"},
					Duration:    "15:00",
				},
				{
					ID:          "less-02-03",
					Title:       "Integration Guide & Best Practices",
					Description: "Comprehensive guide on OAuth, RESTful patterns in GraphQL, and security.",
					Type:        TypeArticle,
					ContentURL:  "https://www.clarify.ai/blog/integrating-monday-crm-api-a-comprehensive-guide",
					Duration:    "20 min read",
				},
				{
					ID:          "less-02-04",
					Title:       "Integrations Overview",
					Description: "Explore possible integrations and architectural patterns.",
					Type:        TypeArticle,
					ContentURL:  "https://www.subscriptionflow.com/2024/07/monday-com-integrations-a-comprehensive-guide/",
					Duration:    "10 min read",
				},
			},
		},
		{
			ID:          "mod-03",
			Title:       "Advanced: App Development Framework",
			Description: "Build native Monday.com apps, custom views, and widgets using the SDK.",
			Lessons: []Lesson{
				{
					ID:          "less-03-01",
					Title:       "Monday Code & App Deployment",
					Description: "How to use the CLI, manage environment variables, and deploy your app backend.",
					Type:        TypeVideo,
					Media:       &Media{Provider: ProviderYouTube, VideoID: "tXAKtabsXqM"},
					Duration:    "34:00",
					Resources: []Resource{
						{Title: "Monday Code Docs", URL: "https://developer.monday.com/apps/docs/monday-code"},
					},
				},
				{
					ID:          "less-03-02",
					Title:       "Apps Framework Builder's Guide",
					Description: "Webinar on building native tools, handling auth without keys, and dashboard widgets.",
					Type:        TypeVideo,
					Media:       &Media{Provider: ProviderYouTube, VideoID: "lu_0Ize4hm0"},
					Duration:    "60:00",
				},
				{
					ID:          "less-03-03",
					Title:       "Official Framework Documentation",
					Description: "The bible for Monday developers. Architecture, Building Blocks, and Design System.",
					Type:        TypeDocumentation,
					ContentURL:  "https://developer.monday.com/apps",
					Duration:    "Reference",
				},
				{
					ID:          "less-03-04",
					Title:       "GraphQL API Reference",
					Description: "Complete list of queries and mutations.",
					Type:        TypeDocumentation,
					ContentURL:  "https://developer.monday.com/api-reference/",
					Duration:    "Reference",
				},
				{
					ID:          "less-03-05",
					Title:       "Community Q&A: Sales CRM API",
					Description: "Real-world discussion on specific CRM API limitations and solutions.",
					Type:        TypeArticle,
					ContentURL:  "https://community.monday.com/t/does-the-sales-crm-have-an-api/41871",
					Duration:    "5 min read",
				},
			},
		},
		{
			ID:          "mod-04",
			Title:       "Certifications & Career",
			Description: "Get certified and join the partner program.",
			Lessons: []Lesson{
				{
					ID:          "less-04-01",
					Title:       "Official Monday.com Certifications",
					Description: "Guide to API, Sales CRM, and Core certifications.",
					Type:        TypeDocumentation,
					ContentURL:  "https://support.monday.com/hc/en-us/articles/18394717181714-Get-certified-by-monday-com",
					Duration:    "10 min read",
				},
				{
					ID:          "less-04-02",
					Title:       "Developer Partner Program",
					Description: "Benefits of becoming a partner: Sandbox accounts, support, and revenue share.",
					Type:        TypeArticle,
					ContentURL:  "https://partners.monday.com/roles/developer/",
					Duration:    "5 min read",
				},
				{
					ID:          "less-04-03",
					Title:       "Tella Academy Certifications",
					Description: "Alternative certification path with portfolio building.",
					Type:        TypeArticle,
					ContentURL:  "https://www.tella.com/certification/monday",
					Duration:    "Flexible",
				},
			},
		},
	},
}
