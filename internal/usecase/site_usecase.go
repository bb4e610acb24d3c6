package usecase

import (
	"go-pixelco-site/internal/domain"
	"go-pixelco-site/pkg/clock"
)

type siteUsecase struct {
	content domain.SiteContent
	clock   clock.Clocker
}

// NewSiteUsecase serves the static marketing copy.
func NewSiteUsecase(content domain.SiteContent, clk clock.Clocker) domain.SiteUsecase {
	return &siteUsecase{content: content, clock: clk}
}

func (uc *siteUsecase) Home() domain.SiteContent {
	c := uc.content
	c.CurrentYear = uc.clock.Now().Year()
	return c
}

func (uc *siteUsecase) NotFound() domain.NotFoundPage {
	return domain.NotFoundPage{
		Title:       "Página no encontrada",
		CompanyName: uc.content.CompanyName,
		CurrentYear: uc.clock.Now().Year(),
	}
}

// DefaultSiteContent is the published Pixel&Co copy.
func DefaultSiteContent() domain.SiteContent {
	return domain.SiteContent{
		Title:             "Pixel&Co",
		CompanyName:       "Pixel&Co",
		HeroTitle:         "Innovación Digital del Futuro",
		HeroDescription:   "Transformamos ideas en soluciones digitales extraordinarias con tecnología de vanguardia",
		AboutDescription:  "Somos una empresa especializada en crear soluciones digitales innovadoras que impulsan el crecimiento de tu negocio. Con años de experiencia en el mercado, nos hemos consolidado como líderes en desarrollo tecnológico.",
		AboutMission:      "Nuestra misión es democratizar la tecnología, haciendo que las herramientas más avanzadas sean accesibles para empresas de todos los tamaños. Creemos que la innovación debe ser el motor del progreso empresarial.",
		AboutImage:        "/images/team.svg",
		FooterDescription: "Liderando la revolución digital con soluciones innovadoras y tecnología de vanguardia.",
		FormAction:        "/contact",
		Services: []domain.ServiceOffering{
			{Icon: "🚀", Title: "Desarrollo Web", Description: "Aplicaciones web escalables, robustas y seguras diseñadas para crecer con tu negocio. Utilizamos las últimas tecnologías para garantizar rendimiento óptimo."},
			{Icon: "💳", Title: "Sistemas POS", Description: "Soluciones de punto de venta inteligentes que optimizan tus operaciones comerciales con análisis en tiempo real y gestión de inventarios."},
			{Icon: "📱", Title: "Publicidad Digital", Description: "Campañas publicitarias estratégicas en redes sociales y Google Ads que maximizan tu ROI y aumentan tu presencia online."},
			{Icon: "🎨", Title: "Diseño Gráfico", Description: "Diseños creativos y profesionales que comunican la esencia de tu marca: logos, branding, material publicitario y más."},
			{Icon: "📸", Title: "Fotografía Profesional", Description: "Fotografía comercial y de producto que captura la calidad y esencia de tu negocio con un enfoque profesional y creativo."},
			{Icon: "📊", Title: "Marketing Digital", Description: "Estrategias integrales de marketing digital: SEO, content marketing, email marketing y análisis de métricas para impulsar tu crecimiento."},
		},
		Stats: []domain.Stat{
			{Number: "150+", Label: "Proyectos Completados"},
			{Number: "50+", Label: "Clientes Satisfechos"},
			{Number: "5+", Label: "Años de Experiencia"},
			{Number: "24/7", Label: "Soporte Técnico"},
		},
		Contact: domain.ContactChannels{
			Email:   "info@techsolutions.com",
			Phone:   "+57 300 123 4567",
			Address: "Popayán, Cauca, Colombia",
		},
		Social: domain.SocialLinks{
			Facebook:  "https://facebook.com/tu-empresa",
			Instagram: "https://instagram.com/tu-empresa",
			LinkedIn:  "https://linkedin.com/company/tu-empresa",
			Twitter:   "https://twitter.com/tu-empresa",
		},
	}
}
