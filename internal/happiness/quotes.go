package happiness

import "math/rand/v2"

// Sidebar flavor text shown alongside the dashboard.
var quotes = []string{
	"Happiness is not something ready-made. It comes from your own actions. - Dalai Lama",
	"The purpose of our lives is to be happy. - Dalai Lama",
	"Happiness depends upon ourselves. - Aristotle",
	"Success is not the key to happiness. Happiness is the key to success. - Albert Schweitzer",
	"Happiness is when what you think, what you say, and what you do are in harmony. - Mahatma Gandhi",
}

var facts = []string{
	"Finland has ranked as the happiest country in the world for several years.",
	"Denmark, Switzerland, and Iceland are also consistently among the happiest countries.",
	"The World Happiness Report is published annually by the United Nations Sustainable Development Solutions Network.",
	"Happiness is strongly correlated with economic factors, such as GDP per capita and social support.",
	"Social trust and life expectancy are also major factors in determining a country's happiness score.",
}

// RandomQuote returns a quote of the day.
func RandomQuote() string {
	return quotes[rand.IntN(len(quotes))]
}

// RandomFact returns a fact of the day.
func RandomFact() string {
	return facts[rand.IntN(len(facts))]
}
