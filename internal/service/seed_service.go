package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/merrickdc/cms_api/internal/models"
	"github.com/merrickdc/cms_api/internal/repository"
)

// SeedService inserts baseline content into empty collections at startup.
// Re-running against a populated store is a no-op. Two instances booting
// against the same empty store can race and double-seed; that risk is
// accepted rather than mitigated with locking.
type SeedService struct {
	serviceRepo     *repository.ServiceRepository
	testimonialRepo *repository.TestimonialRepository
	blogRepo        *repository.BlogRepository
}

// NewSeedService constructs a SeedService.
func NewSeedService(
	serviceRepo *repository.ServiceRepository,
	testimonialRepo *repository.TestimonialRepository,
	blogRepo *repository.BlogRepository,
) *SeedService {
	return &SeedService{
		serviceRepo:     serviceRepo,
		testimonialRepo: testimonialRepo,
		blogRepo:        blogRepo,
	}
}

// Run seeds each empty collection with its defaults: 3 services,
// 3 testimonials, 2 blog posts.
func (s *SeedService) Run(ctx context.Context) error {
	if err := s.seedServices(ctx); err != nil {
		return err
	}
	if err := s.seedTestimonials(ctx); err != nil {
		return err
	}
	return s.seedBlogPosts(ctx)
}

func (s *SeedService) seedServices(ctx context.Context) error {
	n, err := s.serviceRepo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, svc := range defaultServices() {
		if err := s.serviceRepo.Create(ctx, svc); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(defaultServices())).Msg("Seeded default services")
	return nil
}

func (s *SeedService) seedTestimonials(ctx context.Context) error {
	n, err := s.testimonialRepo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, in := range defaultTestimonials() {
		if _, err := s.testimonialRepo.Create(ctx, in); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(defaultTestimonials())).Msg("Seeded default testimonials")
	return nil
}

func (s *SeedService) seedBlogPosts(ctx context.Context) error {
	n, err := s.blogRepo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, in := range defaultBlogPosts() {
		if _, err := s.blogRepo.Create(ctx, in); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(defaultBlogPosts())).Msg("Seeded default blog posts")
	return nil
}

func boolPtr(b bool) *bool { return &b }

func defaultServices() []*models.Service {
	return []*models.Service{
		{
			Title:       "Custom Database Development",
			Description: "Bespoke database applications built around the way your business actually works, from first workshop to go-live.",
			Icon:        "database",
			Features: []string{
				"Requirements workshops and data modelling",
				"Tailored forms, views and workflows",
				"Migration from spreadsheets and legacy systems",
				"User training and handover documentation",
			},
			Pricing: models.PricingMap{
				"starter":  "from £1,500",
				"standard": "from £4,000",
				"custom":   "quoted per project",
			},
			Published: true,
			Order:     1,
		},
		{
			Title:       "Process Automation",
			Description: "Replace repetitive manual admin with automated workflows that keep your records accurate and your team focused.",
			Icon:        "workflow",
			Features: []string{
				"Automated data entry and validation",
				"Scheduled imports and exports",
				"Email and document generation",
				"Integration with existing tools",
			},
			Pricing: models.PricingMap{
				"assessment": "free initial review",
				"project":    "from £2,000",
			},
			Published: true,
			Order:     2,
		},
		{
			Title:       "Reporting & Analytics",
			Description: "Dashboards and reports that turn the data you already hold into decisions you can stand behind.",
			Icon:        "chart",
			Features: []string{
				"Management dashboards",
				"Scheduled report delivery",
				"Data quality audits",
				"Ad-hoc analysis support",
			},
			Published: true,
			Order:     3,
		},
	}
}

func defaultTestimonials() []*models.TestimonialInput {
	return []*models.TestimonialInput{
		{
			Name:      "Sarah Whitfield",
			Company:   "Whitfield & Moore Surveyors",
			Location:  "Leeds",
			Text:      "Our job tracking used to live in four different spreadsheets. The database Christopher built has every job, quote and invoice in one place, and month-end reporting went from two days to twenty minutes.",
			Rating:    5,
			Published: boolPtr(true),
		},
		{
			Name:      "James Okafor",
			Company:   "Okafor Logistics",
			Location:  "Manchester",
			Text:      "Clear communication, realistic timelines, and a system our drivers actually use. The automated delivery reports alone paid for the project within six months.",
			Rating:    5,
			Published: boolPtr(true),
		},
		{
			Name:      "Helen Carter",
			Company:   "Carter Events",
			Location:  "York",
			Text:      "We came with a vague idea and left with a booking system that fits how we work rather than the other way round. Support after launch has been just as good.",
			Rating:    4,
			Published: boolPtr(true),
		},
	}
}

func defaultBlogPosts() []*models.BlogPostInput {
	return []*models.BlogPostInput{
		{
			Title:     "Five Signs Your Business Has Outgrown Spreadsheets",
			Slug:      "five-signs-outgrown-spreadsheets",
			Excerpt:   "Spreadsheets are brilliant until they quietly become the riskiest system in your business. Here are the warning signs to watch for.",
			Content:   "Every business starts with a spreadsheet, and for a while it is exactly the right tool. The trouble starts when the spreadsheet stops being a calculation aid and becomes the system of record for your customers, jobs or stock.\n\nThe first sign is version confusion: nobody is quite sure which copy is current. The second is the bottleneck, where only one person can safely edit the file. Third comes silent breakage, formulas that stopped working months ago without anyone noticing. Fourth is the audit question you cannot answer, because spreadsheets do not remember who changed what. And fifth is the re-keying tax, the hours spent copying the same data between files.\n\nIf two or more of these sound familiar, a small structured database will usually pay for itself within the year. It does not need to be a big-bang project; the best migrations start with the single most painful spreadsheet and grow from there.",
			Category:  "Advice",
			ReadTime:  "6 min read",
			Published: boolPtr(true),
		},
		{
			Title:     "What a Database Consultancy Project Actually Looks Like",
			Slug:      "what-a-database-project-looks-like",
			Excerpt:   "Scoping, prototyping, migration and handover: a walk through the stages of a typical engagement, with honest notes on where the time goes.",
			Content:   "Clients are often surprised that the first week of a database project involves no software at all. It starts with sitting alongside the people who will use the system and watching how the work actually flows, because the gap between the documented process and the real one is where projects fail.\n\nFrom there we build a thin prototype: real screens, a handful of real records, and deliberately rough edges. The goal is to provoke corrections early, while they are cheap. Only once the shape settles do we migrate historical data, which is invariably messier than anyone expects and is the single stage most worth budgeting generously for.\n\nThe final stage is handover: training, documentation, and an agreed support window. A system only counts as delivered when the team runs it without me in the room.",
			Category:  "Process",
			ReadTime:  "8 min read",
			Published: boolPtr(true),
		},
	}
}
