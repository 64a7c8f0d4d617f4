// Package jama holds the static site map for the Jama Requirements
// Management Guide, plus the default tuning constants for a scrape run.
// The chapter and article lists were taken from the guide's table of
// contents; chapters whose article lists change over time carry a discovery
// marker and are resolved at run time from their overview pages.
package jama

import (
	"time"

	"rmguide"
)

// BaseURL is the root of the guide.
const BaseURL = "https://www.jamasoftware.com/requirements-management-guide"

// GlossaryURL is the guide's glossary page.
const GlossaryURL = BaseURL + "/rm-glossary/"

// GuideTitle and Publisher describe the corpus in assembled metadata.
const (
	GuideTitle = "The Essential Guide to Requirements Management and Traceability"
	Publisher  = "Jama Software"
)

// Default run configuration.
const (
	DefaultRateLimitDelay = 1 * time.Second
	DefaultConcurrency    = 3
	DefaultTimeout        = 30 * time.Second
	DefaultMaxAttempts    = 3
)

// SiteMap returns the static site map for the guide. Callers must treat the
// result as read-only; the discoverer clones it before resolving
// discovery-marked chapters.
func SiteMap() *rmguide.SiteMap {
	return &rmguide.SiteMap{
		Title:       GuideTitle,
		Publisher:   Publisher,
		BaseURL:     BaseURL,
		GlossaryURL: GlossaryURL,
		Chapters:    chapters(),
	}
}

func chapters() []*rmguide.ChapterConfig {
	return []*rmguide.ChapterConfig{
		{
			Number: 1,
			Title:  "Requirements Management",
			Slug:   "requirements-management",
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
				{Number: 1, Title: "What is Requirements Management?", Slug: "what-is-requirements-management"},
				{Number: 2, Title: "Why do you need Requirements Management?", Slug: "why-do-you-need-requirements-management"},
				{Number: 3, Title: "Four Stages of Requirements Management Processes", Slug: "four-fundamentals-of-requirements-management"},
				{Number: 4, Title: "Adopting an Agile Approach to Requirements Management", Slug: "adopting-an-agile-approach-to-requirements-management"},
				{Number: 5, Title: "Status Request Changes", Slug: "status-requests-changes"},
				{Number: 6, Title: "Conquering the 5 Biggest Challenges of Requirements Management", Slug: "conquering-the-5-biggest-challenges-of-requirements-management"},
				{Number: 7, Title: "Three Reasons You Need a Requirements Management Solution", Slug: "three-reasons-you-need-a-requirements-management-solution"},
				{Number: 8, Title: "Guide to Poor Requirements: Identify Causes, Repercussions, and How to Fix Them", Slug: "guide-to-poor-requirements-identify-causes-repercussions-and-how-to-fix-them"},
			},
		},
		{
			Number: 2,
			Title:  "Writing Requirements",
			Slug:   "writing-requirements",
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
				{Number: 1, Title: "Functional requirements examples and templates", Slug: "functional-requirements-examples-and-templates"},
				{Number: 2, Title: "Identifying and Measuring Requirements Quality", Slug: "identifying-and-measuring-the-quality-of-requirements"},
				{Number: 3, Title: "How to write system requirement specification (SRS) documents", Slug: "how-to-write-system-requirement-specification-srs-documents"},
				{Number: 4, Title: "The Fundamentals of Business Requirements", Slug: "the-fundamentals-of-business-requirements-examples-of-business-requirements-and-the-importance-of-excellence"},
				{Number: 5, Title: "Adopting the EARS Notation to Improve Requirements Engineering", Slug: "adopting-the-ears-notation-to-improve-requirements-engineering"},
				{Number: 6, Title: "Jama Connect Advisor™", Slug: "jama-connect-advisor"},
				{Number: 7, Title: "FAQ: EARS Notation and Jama Connect Advisor™", Slug: "frequently-asked-questions-about-the-ears-notation-and-jama-connect-requirements-advisor"},
				{Number: 8, Title: "How to Write an Effective Product Requirements Document (PRD)", Slug: "how-to-write-an-effective-product-requirements-document"},
				{Number: 9, Title: "Functional vs. Non-Functional Requirements", Slug: "functional-vs-non-functional-requirements"},
				{Number: 10, Title: "What Are Nonfunctional Requirements and How Do They Impact Product Development?", Slug: "how-non-functional-requirements-impact-product-development"},
				{Number: 11, Title: "Characteristics of Effective Software Requirements and SRS", Slug: "the-characteristics-of-excellent-requirements"},
				{Number: 12, Title: "8 Do's and Don'ts for Writing Requirements", Slug: "8-dos-and-donts-for-writing-requirements"},
			},
		},
		{
			Number: 3,
			Title:  "Requirements Gathering and Management Processes",
			Slug:   "requirements-gathering-and-management-processes",
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
				{Number: 1, Title: "Requirements Engineering", Slug: "requirements-engineering"},
				{Number: 2, Title: "Requirements Analysis", Slug: "requirements-analysis"},
				{Number: 3, Title: "A Guide to Requirements Elicitation for Product Teams", Slug: "a-guide-to-requirements-elicitation-for-product-teams"},
				{Number: 4, Title: "Requirements Gathering Techniques for Agile Product Teams", Slug: "11-requirements-gathering-techniques-for-agile-product-teams"},
				{Number: 5, Title: "What is Requirements Gathering?", Slug: "what-is-requirements-gathering"},
				{Number: 6, Title: "Defining and Implementing a Requirements Baseline", Slug: "defining-and-implementing-requirements-baselines"},
				{Number: 7, Title: "Managing Project Scope — Why It Matters and Best Practices", Slug: "managing-project-scope-why-it-matters-and-best-practices"},
				{Number: 8, Title: "How Long Do Requirements Take?", Slug: "how-long-do-requirements-take"},
				{Number: 9, Title: "How to Reuse Requirements Across Multiple Products", Slug: "how-to-reuse-requirements-across-multiple-products"},
			},
		},
		{
			Number: 4,
			Title:  "Requirements Traceability",
			Slug:   "requirements-traceability",
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
				{Number: 1, Title: "What is Traceability?", Slug: "what-is-traceability"},
				{Number: 2, Title: "How is Traceability Achieved? A Practical Guide for Engineers", Slug: "how-is-traceability-achieved-a-practical-guide-for-engineers"},
				{Number: 3, Title: "Tracing Your Way to Success: The Crucial Role of Traceability", Slug: "tracing-your-way-to-success-the-crucial-role-of-traceability-in-modern-product-and-systems-development"},
				{Number: 4, Title: "Change Impact Analysis (CIA): A Short Guide", Slug: "change-impact-analysis-cia-a-short-guide-for-effective-implementation"},
				{Number: 5, Title: "What is Requirements Traceability and Why Does It Matter?", Slug: "what-is-traceability-and-why-does-it-matter-for-product-teams"},
				{Number: 6, Title: "What is Meant by Version Control?", Slug: "what-is-meant-by-version-control"},
				{Number: 7, Title: "Key Traceability Challenges and Tips", Slug: "key-traceability-challenges-and-tips-for-ensuring-accountability-and-efficiency"},
				{Number: 8, Title: "Unraveling the Digital Thread", Slug: "unraveling-the-digital-thread-enhancing-connectivity-and-efficiency"},
				{Number: 9, Title: "The Role of a Data Thread in Product and Software Development", Slug: "the-role-of-a-data-thread-in-product-and-software-development"},
				{Number: 10, Title: "How to Create and Use a Requirements Traceability Matrix", Slug: "how-to-create-and-use-a-requirements-traceability-matrix"},
				{Number: 11, Title: "Traceability Matrix 101: Why It's Not the Ultimate Solution", Slug: "traceability-matrix-101-why-its-not-the-ultimate-solution-for-managing-requirements"},
				{Number: 12, Title: "Live Traceability vs. After-the-Fact Traceability", Slug: "live-traceability-vs-after-the-fact-traceability"},
				{Number: 13, Title: "How to Overcome Organizational Barriers to Live Requirements Traceability", Slug: "how-to-overcome-organizational-barriers-to-live-requirements-traceability"},
				{Number: 14, Title: "Requirements Traceability, What Are You Missing?", Slug: "requirements-traceability-what-are-you-missing"},
				{Number: 15, Title: "Four Best Practices for Requirements Traceability", Slug: "four-best-practices-for-requirements-traceability"},
				{Number: 16, Title: "Requirements Traceability: Links in the Chain", Slug: "links-in-the-chain"},
				{Number: 17, Title: "What Are the Benefits of End-to-End Traceability?", Slug: "what-are-the-benefits-of-end-to-end-traceability-in-product-development"},
			},
		},
		{
			Number: 5,
			Title:  "Requirements Management Tools and Software",
			Slug:   "requirements-management-tools-and-software",
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
				{Number: 1, Title: "Selecting the Right Requirements Management Tools and Software", Slug: "selecting-the-right-requirements-management-tools-and-software"},
				{Number: 2, Title: "Why Investing in RM Software Makes Business Sense", Slug: "why-investing-in-rm-software-makes-good-business-sense"},
				{Number: 3, Title: "Why Word and Excel Alone is Not Enough", Slug: "why-word-and-excel-alone-is-not-enough-for-product-software-and-systems-development"},
				{Number: 4, Title: "Application Lifecycle Management (ALM)", Slug: "application-lifecycle-management-alm"},
				{Number: 5, Title: "Is There Life After DOORS®?", Slug: "is-there-life-after-doors"},
				{Number: 6, Title: "Can You Track Requirements in Jira?", Slug: "can-you-track-requirements-in-jira"},
				{Number: 7, Title: "Checklist: Selecting a Requirements Management Tool", Slug: "checklist-selecting-a-requirements-management-tool"},
			},
		},
		{
			Number:   6,
			Title:    "Requirements Validation and Verification",
			Slug:     "requirements-validation-and-verification",
			Discover: true,
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
			},
		},
		{
			Number: 7,
			Title:  "Meeting Regulatory Compliance and Industry Standards",
			Slug:   "meeting-regulatory-compliance-and-industry-standards",
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
				{Number: 1, Title: "Understanding ISO Standards", Slug: "understanding-iso-standards"},
				{Number: 2, Title: "Understanding ISO/IEC 27001", Slug: "understanding-iso-iec-27001-a-guide-to-information-security-management"},
				{Number: 3, Title: "What is DevSecOps? A Guide to Building Secure Software", Slug: "what-is-devsecops-a-guide-to-building-secure-software"},
				{Number: 4, Title: "Compliance Management", Slug: "compliance-management"},
				{Number: 5, Title: "What is FMEA? Failure Modes and Effects Analysis", Slug: "fmea"},
				{Number: 6, Title: "TÜV SÜD: Ensuring Safety, Quality, and Sustainability", Slug: "tuv-sud-ensuring-safety-quality-and-sustainability-worldwide"},
			},
		},
		{
			Number: 8,
			Title:  "Systems Engineering",
			Slug:   "systems-engineering",
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
				{Number: 1, Title: "What is Systems Engineering?", Slug: "what-is-systems-engineering"},
				{Number: 2, Title: "How Do Engineers Collaborate?", Slug: "how-do-engineers-collaborate-a-guide-to-streamlined-teamwork-and-innovation"},
				{Number: 3, Title: "The Systems Engineering Body of Knowledge (SEBoK)", Slug: "the-systems-engineering-body-of-knowledge-sebok"},
				{Number: 4, Title: "What is MBSE? Model-Based Systems Engineering Explained", Slug: "what-is-mbse-model-based-systems-engineering-explained"},
				{Number: 5, Title: "Digital Engineering Between Government and Contractors", Slug: "digital-engineering-between-government-and-contractors"},
				{Number: 6, Title: "Digital Engineering Tools", Slug: "digital-engineering-tools-the-key-to-driving-innovation-and-efficiency-in-complex-systems"},
			},
		},
		{
			Number:   9,
			Title:    "Automotive Development",
			Slug:     "automotive-engineering",
			Discover: true,
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
			},
		},
		{
			Number: 10,
			Title:  "Medical Device & Life Sciences Development",
			Slug:   "medical-devices",
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
				{Number: 1, Title: "The Importance of Benefit-Risk Analysis in Medical Device Development", Slug: "the-importance-of-benefit-risk-analysis-in-medical-device-development"},
				{Number: 2, Title: "Software as a Medical Device: Revolutionizing Healthcare", Slug: "software-as-a-medical-device-revolutionizing-healthcare"},
				{Number: 3, Title: "What's a Design History File (DHF)?", Slug: "design-history-file-dhf"},
				{Number: 4, Title: "Navigating the Risks of SOUP", Slug: "navigating-the-risks-of-software-of-unknown-pedigree-soup-in-the-medical-device-and-life-sciences-industry"},
				{Number: 5, Title: "What is ISO 13485?", Slug: "iso-13485"},
				{Number: 6, Title: "ANSI/AAMI SW96:2023 — Medical Device Security", Slug: "what-you-need-to-know-ansi-aami-sw96-2023-medical-device-security"},
				{Number: 7, Title: "ISO 13485 vs ISO 9001", Slug: "iso-13485-vs-iso-9001-understanding-the-differences-and-synergies"},
				{Number: 8, Title: "FMEDA for Medical Devices", Slug: "failure-modes-effects-and-diagnositc-analysis-fmeda-for-medical-devices-what-you-need-to-know"},
				{Number: 9, Title: "Internet of Medical Things (IoMT)", Slug: "embracing-the-future-of-healthcare-exploring-the-internet-of-medical-things-iomt"},
			},
		},
		{
			Number:   11,
			Title:    "Aerospace & Defense Development",
			Slug:     "aerospace-and-defense",
			Discover: true,
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
			},
		},
		{
			Number:   12,
			Title:    "Architecture, Engineering, and Construction (AEC)",
			Slug:     "architecture-engineering-and-construction-aec-development",
			Discover: true,
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
			},
		},
		{
			Number:   13,
			Title:    "Industrial Manufacturing & Machinery, Automation & Robotics, Consumer Electronics, and Energy",
			Slug:     "industrial-manufacturing-development",
			Discover: true,
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
			},
		},
		{
			Number:   14,
			Title:    "Semiconductor Development",
			Slug:     "semiconductor",
			Discover: true,
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
			},
		},
		{
			Number:   15,
			Title:    "AI in Product Development",
			Slug:     "artificial-intelligence-in-product-development",
			Discover: true,
			Articles: []*rmguide.ArticleConfig{
				{Number: 0, Title: "Overview"},
			},
		},
	}
}
