package content

import "github.com/studyitalypro/landing/internal/leads"

// keyBundle names the translation keys of one entity.
type keyBundle struct {
	Title       string
	Description string
	List        string
}

type statDef struct {
	ID     string
	Target int
	Suffix string
}

type cardDef struct {
	ID   string
	Icon string
}

type serviceDef struct {
	ID   string
	Icon string
}

type amountDef struct {
	ID     string
	Amount string
}

type contactDef struct {
	ID   string
	Icon string
	Href string
}

type linkDef struct {
	ID      string
	Section Section
}

var navSections = []Section{SectionHome, SectionServices, SectionProcess, SectionPricing, SectionContact}

var navKeys = map[Section]keyBundle{
	SectionHome:     {Title: "nav.home"},
	SectionServices: {Title: "nav.services"},
	SectionProcess:  {Title: "nav.process"},
	SectionPricing:  {Title: "nav.pricing"},
	SectionContact:  {Title: "nav.contact"},
}

var heroStats = []statDef{
	{ID: "acceptance", Target: 100, Suffix: "%"},
	{ID: "scholarship", Target: 21, Suffix: "K €"},
	{ID: "students", Target: 500, Suffix: "+"},
}

var statKeys = map[string]keyBundle{
	"acceptance":  {Title: "hero.stats.acceptance"},
	"scholarship": {Title: "hero.stats.scholarship"},
	"students":    {Title: "hero.stats.students"},
}

var heroCards = []cardDef{
	{ID: "universities", Icon: "🎓"},
	{ID: "stipend", Icon: "💶"},
	{ID: "tuition", Icon: "📚"},
}

var cardKeys = map[string]keyBundle{
	"universities": {Title: "hero.cards.universities"},
	"stipend":      {Title: "hero.cards.stipend"},
	"tuition":      {Title: "hero.cards.tuition"},
}

var services = []serviceDef{
	{ID: "university-applications", Icon: "🏛"},
	{ID: "scholarship-program", Icon: "🏅"},
	{ID: "visa-processing", Icon: "🛂"},
	{ID: "settlement-support", Icon: "🏠"},
}

var serviceKeys = map[string]keyBundle{
	"university-applications": {
		Title:       "services.items.universityApplications.title",
		Description: "services.items.universityApplications.description",
		List:        "services.items.universityApplications.features",
	},
	"scholarship-program": {
		Title:       "services.items.scholarshipProgram.title",
		Description: "services.items.scholarshipProgram.description",
		List:        "services.items.scholarshipProgram.features",
	},
	"visa-processing": {
		Title:       "services.items.visaProcessing.title",
		Description: "services.items.visaProcessing.description",
		List:        "services.items.visaProcessing.features",
	},
	"settlement-support": {
		Title:       "services.items.settlementSupport.title",
		Description: "services.items.settlementSupport.description",
		List:        "services.items.settlementSupport.features",
	},
}

var trustIndicators = []amountDef{
	{ID: "success-rate", Amount: "100%"},
	{ID: "students-placed", Amount: "500+"},
	{ID: "support", Amount: "24/7"},
}

var trustKeys = map[string]keyBundle{
	"success-rate":    {Title: "services.trust.successRate"},
	"students-placed": {Title: "services.trust.studentsPlaced"},
	"support":         {Title: "services.trust.support"},
}

var processSteps = []string{"consultation", "selection", "preparation", "scholarship", "visa", "arrival"}

var stepKeys = map[string]keyBundle{
	"consultation": {Title: "process.steps.consultation.title", Description: "process.steps.consultation.description"},
	"selection":    {Title: "process.steps.selection.title", Description: "process.steps.selection.description"},
	"preparation":  {Title: "process.steps.preparation.title", Description: "process.steps.preparation.description"},
	"scholarship":  {Title: "process.steps.scholarship.title", Description: "process.steps.scholarship.description"},
	"visa":         {Title: "process.steps.visa.title", Description: "process.steps.visa.description"},
	"arrival":      {Title: "process.steps.arrival.title", Description: "process.steps.arrival.description"},
}

var priceTiers = []amountDef{
	{ID: "visa-based", Amount: "$1,000"},
	{ID: "upfront", Amount: "3.5M UZS"},
}

var tierKeys = map[string]keyBundle{
	"visa-based": {Title: "pricing.tiers.visaBased", Description: "pricing.terms.visaBased"},
	"upfront":    {Title: "pricing.tiers.upfront", Description: "pricing.terms.upfront"},
}

var valueProps = []amountDef{
	{ID: "scholarship", Amount: "€21,000"},
	{ID: "tuition", Amount: "$0"},
	{ID: "roi", Amount: "100%"},
}

var valueKeys = map[string]keyBundle{
	"scholarship": {Title: "pricing.value.scholarship.label", Description: "pricing.value.scholarship.note"},
	"tuition":     {Title: "pricing.value.tuition.label", Description: "pricing.value.tuition.note"},
	"roi":         {Title: "pricing.value.roi.label", Description: "pricing.value.roi.note"},
}

var contactMethods = []contactDef{
	{ID: "phone", Icon: "📞", Href: "tel:+998901234567"},
	{ID: "email", Icon: "✉", Href: "mailto:info@studyitalypro.com"},
	{ID: "office", Icon: "📍"},
}

var contactKeys = map[string]keyBundle{
	"phone":  {Title: "contact.form.phone", Description: "contact.info.phone"},
	"email":  {Title: "contact.form.email", Description: "contact.info.email"},
	"office": {Title: "contact.office", Description: "contact.info.address"},
}

var educationKeys = map[leads.Education]keyBundle{
	leads.EducationHighSchool: {Title: "contact.education.highSchool"},
	leads.EducationBachelor:   {Title: "contact.education.bachelor"},
	leads.EducationMaster:     {Title: "contact.education.master"},
	leads.EducationPhD:        {Title: "contact.education.phd"},
}

var footerServices = []linkDef{
	{ID: "university-applications", Section: SectionServices},
	{ID: "scholarship-programs", Section: SectionServices},
	{ID: "visa-processing", Section: SectionServices},
	{ID: "settlement-support", Section: SectionServices},
}

var footerServiceKeys = map[string]keyBundle{
	"university-applications": {Title: "footer.links.universityApplications"},
	"scholarship-programs":    {Title: "footer.links.scholarshipPrograms"},
	"visa-processing":         {Title: "footer.links.visaProcessing"},
	"settlement-support":      {Title: "footer.links.settlementSupport"},
}
