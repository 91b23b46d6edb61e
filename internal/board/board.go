// Package board holds the static transit map: ~120 European cities with
// per-mode connections, field flags and country grouping. All queries are
// read-only; the tables are never mutated after init.
package board

import "fmt"

// Location is a city on the map. Its value is the canonical wire token
// (lowercase snake_case), so formatting is the identity and parsing is a
// table lookup.
type Location string

// Country groups locations for the leave-country and train-cancelled rules.
type Country string

const (
	CountryIreland     Country = "ireland"
	CountryUK          Country = "united_kingdom"
	CountryDenmark     Country = "denmark"
	CountrySpain       Country = "spain"
	CountryAndorra     Country = "andorra"
	CountryFrance      Country = "france"
	CountryNetherlands Country = "netherlands"
	CountryBelgium     Country = "belgium"
	CountryLuxembourg  Country = "luxembourg"
	CountryGermany     Country = "germany"
	CountrySwitzerland Country = "switzerland"
	CountryAustria     Country = "austria"
	CountryItaly       Country = "italy"
	CountryPoland      Country = "poland"
	CountryCzechia     Country = "czechia"
	CountryHungary     Country = "hungary"
	CountrySlovenia    Country = "slovenia"
	CountryCroatia     Country = "croatia"
	CountryBosnia      Country = "bosnia_and_herzegovina"
)

const (
	Dublin              Location = "dublin"
	Rosslare            Location = "rosslare"
	Belfast             Location = "belfast"
	Cairnryan           Location = "cairnryan"
	Glasgow             Location = "glasgow"
	Edinburgh           Location = "edinburgh"
	Newcastle           Location = "newcastle"
	York                Location = "york"
	Liverpool           Location = "liverpool"
	Holyhead            Location = "holyhead"
	Fishguard           Location = "fishguard"
	Swansea             Location = "swansea"
	Birmingham          Location = "birmingham"
	Nottingham          Location = "nottingham"
	Cambridge           Location = "cambridge"
	Oxford              Location = "oxford"
	Plymouth            Location = "plymouth"
	Bournemouth         Location = "bournemouth"
	London              Location = "london"
	Aalborg             Location = "aalborg"
	Aarhus              Location = "aarhus"
	Esbjerg             Location = "esbjerg"
	Copenhagen          Location = "copenhagen"
	Bilbao              Location = "bilbao"
	Burgos              Location = "burgos"
	Pamplona            Location = "pamplona"
	Valladolid          Location = "valladolid"
	Zaragoza            Location = "zaragoza"
	Madrid              Location = "madrid"
	Albacete            Location = "albacete"
	Valencia            Location = "valencia"
	Barcelona           Location = "barcelona"
	Andorra             Location = "andorra"
	Calais              Location = "calais"
	LeHavre             Location = "le_havre"
	Paris               Location = "paris"
	CharlevilleMezieres Location = "charleville_mezieres"
	Brest               Location = "brest"
	Rennes              Location = "rennes"
	Nantes              Location = "nantes"
	LeMans              Location = "le_mans"
	Orleans             Location = "orleans"
	Poitiers            Location = "poitiers"
	LaRochelle          Location = "la_rochelle"
	Limoges             Location = "limoges"
	Bordeaux            Location = "bordeaux"
	ClermontFerrand     Location = "clermont_ferrand"
	Toulouse            Location = "toulouse"
	Montpellier         Location = "montpellier"
	Nancy               Location = "nancy"
	Strasbourg          Location = "strasbourg"
	Dijon               Location = "dijon"
	Lyon                Location = "lyon"
	Grenoble            Location = "grenoble"
	Marseille           Location = "marseille"
	Nice                Location = "nice"
	Groningen           Location = "groningen"
	Amsterdam           Location = "amsterdam"
	TheHague            Location = "the_hague"
	SHertogenbosch      Location = "s_hertogenbosch"
	Ghent               Location = "ghent"
	Antwerp             Location = "antwerp"
	Brussels            Location = "brussels"
	Luxembourg          Location = "luxembourg"
	Kiel                Location = "kiel"
	Bremen              Location = "bremen"
	Hamburg             Location = "hamburg"
	Rostock             Location = "rostock"
	Bielefeld           Location = "bielefeld"
	Magdeburg           Location = "magdeburg"
	Berlin              Location = "berlin"
	Cologne             Location = "cologne"
	Kassel              Location = "kassel"
	Erfurt              Location = "erfurt"
	Leipzig             Location = "leipzig"
	Dresden             Location = "dresden"
	Frankfurt           Location = "frankfurt"
	Nuremberg           Location = "nuremberg"
	Stuttgart           Location = "stuttgart"
	Munich              Location = "munich"
	Basel               Location = "basel"
	Zurich              Location = "zurich"
	Merlischachen       Location = "merlischachen"
	Geneva              Location = "geneva"
	Innsbruck           Location = "innsbruck"
	Salzburg            Location = "salzburg"
	Linz                Location = "linz"
	Vienna              Location = "vienna"
	Villach             Location = "villach"
	Graz                Location = "graz"
	Bolzano             Location = "bolzano"
	Trento              Location = "trento"
	Turin               Location = "turin"
	Milan               Location = "milan"
	Padua               Location = "padua"
	Venice              Location = "venice"
	Genoa               Location = "genoa"
	Bologna             Location = "bologna"
	Pisa                Location = "pisa"
	Florence            Location = "florence"
	SanMarino           Location = "san_marino"
	Perugia             Location = "perugia"
	Rome                Location = "rome"
	Gdansk              Location = "gdansk"
	Szczecin            Location = "szczecin"
	Bydgoszcz           Location = "bydgoszcz"
	Poznan              Location = "poznan"
	Wroclaw             Location = "wroclaw"
	Pilsen              Location = "pilsen"
	Prague              Location = "prague"
	Liberec             Location = "liberec"
	CeskeBudejovice     Location = "ceske_budejovice"
	Brno                Location = "brno"
	Ostrava             Location = "ostrava"
	Sopron              Location = "sopron"
	Ljubljana           Location = "ljubljana"
	Rijeka              Location = "rijeka"
	Zagreb              Location = "zagreb"
	Split               Location = "split"
	BanjaLuka           Location = "banja_luka"
)

// Parse validates a wire token and returns it as a Location.
func Parse(token string) (Location, error) {
	l := Location(token)
	if _, ok := nodes[l]; !ok {
		return "", fmt.Errorf("unknown location %q", token)
	}
	return l, nil
}

func (l Location) String() string { return string(l) }

// LowSpeedConnections returns the regional-train edges from l.
func (l Location) LowSpeedConnections() []Location { return nodes[l].low }

// HighSpeedConnections returns the express-train edges from l.
func (l Location) HighSpeedConnections() []Location { return nodes[l].high }

// PlaneConnections returns the flight edges from l.
func (l Location) PlaneConnections() []Location { return nodes[l].plane }

// JokerConnections returns the union of all three edge sets.
func (l Location) JokerConnections() []Location {
	n := nodes[l]
	out := make([]Location, 0, len(n.low)+len(n.high)+len(n.plane))
	out = append(out, n.low...)
	out = append(out, n.high...)
	out = append(out, n.plane...)
	return out
}

// NorthConnections returns every joker connection lying strictly north of l.
func (l Location) NorthConnections() []Location {
	var out []Location
	for _, c := range l.JokerConnections() {
		if nodes[c].lat > nodes[l].lat {
			out = append(out, c)
		}
	}
	return out
}

func (l Location) IsCoinField() bool  { return nodes[l].coin }
func (l Location) IsEventField() bool { return nodes[l].event }
func (l Location) IsCoastal() bool    { return nodes[l].coastal }

func (l Location) Country() Country { return nodes[l].country }

// All returns every location on the map. The slice is freshly allocated.
func All() []Location {
	out := make([]Location, 0, len(nodes))
	for l := range nodes {
		out = append(out, l)
	}
	return out
}
