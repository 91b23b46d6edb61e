package board

// node bundles the static attributes of one city. Latitude drives the
// north-edge query; coastal marks sea and ferry ports for beach hops.
type node struct {
	low     []Location
	high    []Location
	plane   []Location
	coin    bool
	event   bool
	coastal bool
	country Country
	lat     float64
}

var nodes = map[Location]node{
	// Ireland
	Dublin: {
		low:     []Location{Belfast, Holyhead, Rosslare},
		plane:   []Location{Copenhagen, London, Paris},
		coastal: true, country: CountryIreland, lat: 53.35,
	},
	Rosslare: {
		low:     []Location{Dublin, Fishguard},
		coastal: true, country: CountryIreland, lat: 52.25,
	},
	// United Kingdom
	Belfast: {
		low:     []Location{Dublin, Cairnryan},
		coastal: true, country: CountryUK, lat: 54.60,
	},
	Cairnryan: {
		low:     []Location{Belfast, Glasgow},
		coastal: true, country: CountryUK, lat: 54.97,
	},
	Glasgow: {
		low:     []Location{Cairnryan, Liverpool, Edinburgh},
		coastal: true, country: CountryUK, lat: 55.86,
	},
	Edinburgh: {
		low:  []Location{Glasgow, Newcastle},
		high: []Location{York, Liverpool},
		coin: true, coastal: true, country: CountryUK, lat: 55.95,
	},
	Newcastle: {
		low:     []Location{Edinburgh, York},
		coastal: true, country: CountryUK, lat: 54.98,
	},
	York: {
		low:     []Location{Newcastle, Liverpool, Nottingham},
		high:    []Location{Edinburgh, London},
		country: CountryUK, lat: 53.96,
	},
	Liverpool: {
		low:     []Location{Glasgow, York, Birmingham, Holyhead},
		high:    []Location{Edinburgh, London},
		coastal: true, country: CountryUK, lat: 53.41,
	},
	Holyhead: {
		low:   []Location{Dublin, Liverpool},
		event: true, coastal: true, country: CountryUK, lat: 53.31,
	},
	Fishguard: {
		low:     []Location{Rosslare, Swansea},
		coastal: true, country: CountryUK, lat: 52.00,
	},
	Swansea: {
		low:  []Location{Fishguard, Birmingham},
		coin: true, coastal: true, country: CountryUK, lat: 51.62,
	},
	Birmingham: {
		low:     []Location{Liverpool, Nottingham, London, Oxford, Swansea},
		country: CountryUK, lat: 52.48,
	},
	Nottingham: {
		low:     []Location{York, Cambridge, Birmingham},
		country: CountryUK, lat: 52.95,
	},
	Cambridge: {
		low:     []Location{Nottingham, London},
		country: CountryUK, lat: 52.21,
	},
	Oxford: {
		low:     []Location{Birmingham, London, Bournemouth, Plymouth},
		country: CountryUK, lat: 51.75,
	},
	Plymouth: {
		low:  []Location{Oxford, Bournemouth, Brest},
		coin: true, coastal: true, country: CountryUK, lat: 50.38,
	},
	Bournemouth: {
		low:     []Location{Oxford, London, Plymouth},
		coastal: true, country: CountryUK, lat: 50.72,
	},
	London: {
		low:     []Location{Cambridge, Calais, Bournemouth, Oxford, Birmingham},
		high:    []Location{York, Liverpool, Paris},
		plane:   []Location{Dublin, Berlin, Frankfurt, Paris},
		country: CountryUK, lat: 51.51,
	},
	// Denmark
	Aalborg: {
		low:  []Location{Aarhus, Esbjerg},
		coin: true, coastal: true, country: CountryDenmark, lat: 57.05,
	},
	Aarhus: {
		low:     []Location{Aalborg, Copenhagen, Esbjerg},
		coastal: true, country: CountryDenmark, lat: 56.16,
	},
	Esbjerg: {
		low:     []Location{Aalborg, Aarhus, Kiel},
		coastal: true, country: CountryDenmark, lat: 55.47,
	},
	Copenhagen: {
		low:     []Location{Aarhus, Rostock, Kiel},
		high:    []Location{Hamburg},
		plane:   []Location{Dublin, Frankfurt, Vienna},
		coastal: true, country: CountryDenmark, lat: 55.68,
	},
	// Spain
	Bilbao: {
		low:  []Location{Pamplona, Burgos},
		coin: true, coastal: true, country: CountrySpain, lat: 43.26,
	},
	Burgos: {
		low:     []Location{Bilbao, Pamplona, Valladolid},
		country: CountrySpain, lat: 42.34,
	},
	Pamplona: {
		low:     []Location{Bordeaux, Zaragoza, Burgos, Bilbao},
		country: CountrySpain, lat: 42.82,
	},
	Valladolid: {
		low:     []Location{Burgos, Madrid},
		country: CountrySpain, lat: 41.65,
	},
	Zaragoza: {
		low:     []Location{Pamplona, Toulouse, Andorra, Barcelona, Valencia, Madrid},
		high:    []Location{Madrid, Toulouse},
		country: CountrySpain, lat: 41.66,
	},
	Madrid: {
		low:     []Location{Valladolid, Zaragoza, Albacete},
		high:    []Location{Zaragoza, Barcelona, Toulouse},
		plane:   []Location{Paris, Rome},
		country: CountrySpain, lat: 40.42,
	},
	Albacete: {
		low:     []Location{Madrid, Valencia},
		country: CountrySpain, lat: 38.99,
	},
	Valencia: {
		low:  []Location{Zaragoza, Barcelona, Albacete},
		coin: true, coastal: true, country: CountrySpain, lat: 39.47,
	},
	Barcelona: {
		low:     []Location{Andorra, Valencia, Zaragoza},
		high:    []Location{Madrid, Bordeaux},
		coastal: true, country: CountrySpain, lat: 41.39,
	},
	// Andorra
	Andorra: {
		low:   []Location{Toulouse, Barcelona, Zaragoza},
		event: true, country: CountryAndorra, lat: 42.51,
	},
	// France
	Calais: {
		low:     []Location{London, Ghent, Paris},
		coastal: true, country: CountryFrance, lat: 50.95,
	},
	LeHavre: {
		low:  []Location{Paris, Rennes},
		coin: true, coastal: true, country: CountryFrance, lat: 49.49,
	},
	Paris: {
		low:     []Location{Calais, Brussels, CharlevilleMezieres, Nancy, Dijon, Orleans, LeMans, LeHavre},
		high:    []Location{London, Brussels, Frankfurt, Lyon, Toulouse, Bordeaux, Nantes},
		plane:   []Location{Dublin, London, Berlin, Zurich, Madrid},
		country: CountryFrance, lat: 48.86,
	},
	CharlevilleMezieres: {
		low:     []Location{Luxembourg, Nancy, Paris},
		country: CountryFrance, lat: 49.77,
	},
	Brest: {
		low:   []Location{Plymouth, Rennes, Nantes},
		event: true, coastal: true, country: CountryFrance, lat: 48.39,
	},
	Rennes: {
		low:     []Location{LeHavre, LeMans, Nantes, Brest},
		country: CountryFrance, lat: 48.11,
	},
	Nantes: {
		low:     []Location{Rennes, LaRochelle, Brest},
		high:    []Location{Paris, Bordeaux},
		coastal: true, country: CountryFrance, lat: 47.22,
	},
	LeMans: {
		low:     []Location{Paris, Poitiers, Rennes},
		country: CountryFrance, lat: 48.01,
	},
	Orleans: {
		low:     []Location{Paris, Limoges, Poitiers},
		country: CountryFrance, lat: 47.90,
	},
	Poitiers: {
		low:     []Location{LeMans, Orleans, Limoges, LaRochelle},
		country: CountryFrance, lat: 46.58,
	},
	LaRochelle: {
		low:  []Location{Nantes, Poitiers, Bordeaux},
		coin: true, coastal: true, country: CountryFrance, lat: 46.16,
	},
	Limoges: {
		low:     []Location{Poitiers, Orleans, ClermontFerrand, Toulouse, Bordeaux},
		country: CountryFrance, lat: 45.83,
	},
	Bordeaux: {
		low:     []Location{LaRochelle, Limoges, Toulouse, Pamplona},
		high:    []Location{Nantes, Barcelona, Marseille, Paris},
		country: CountryFrance, lat: 44.84,
	},
	ClermontFerrand: {
		low:   []Location{Lyon, Montpellier, Limoges},
		event: true, country: CountryFrance, lat: 45.78,
	},
	Toulouse: {
		low:     []Location{Limoges, Montpellier, Andorra, Zaragoza, Bordeaux},
		high:    []Location{Paris, Madrid, Zaragoza},
		country: CountryFrance, lat: 43.60,
	},
	Montpellier: {
		low:  []Location{ClermontFerrand, Marseille, Toulouse},
		coin: true, country: CountryFrance, lat: 43.61,
	},
	Nancy: {
		low:     []Location{Luxembourg, Strasbourg, Frankfurt, Dijon, Paris, CharlevilleMezieres},
		country: CountryFrance, lat: 48.69,
	},
	Strasbourg: {
		low:     []Location{Stuttgart, Basel, Nancy},
		high:    []Location{Frankfurt},
		country: CountryFrance, lat: 48.57,
	},
	Dijon: {
		low:     []Location{Nancy, Basel, Lyon, Paris},
		country: CountryFrance, lat: 47.32,
	},
	Lyon: {
		low:     []Location{Dijon, Geneva, Grenoble, ClermontFerrand},
		high:    []Location{Paris, Basel, Marseille},
		country: CountryFrance, lat: 45.76,
	},
	Grenoble: {
		low:     []Location{Geneva, Turin, Marseille, Lyon},
		country: CountryFrance, lat: 45.19,
	},
	Marseille: {
		low:     []Location{Grenoble, Nice, Montpellier},
		high:    []Location{Bordeaux, Lyon, Milan},
		coastal: true, country: CountryFrance, lat: 43.30,
	},
	Nice: {
		low:     []Location{Genoa, Marseille},
		coastal: true, country: CountryFrance, lat: 43.70,
	},
	// Netherlands
	Groningen: {
		low:  []Location{Bremen, Amsterdam},
		coin: true, country: CountryNetherlands, lat: 53.22,
	},
	Amsterdam: {
		low:     []Location{Groningen, TheHague},
		high:    []Location{Hamburg, Brussels},
		coastal: true, country: CountryNetherlands, lat: 52.37,
	},
	TheHague: {
		low:     []Location{Amsterdam, Antwerp},
		coastal: true, country: CountryNetherlands, lat: 52.08,
	},
	SHertogenbosch: {
		low:  []Location{Antwerp},
		coin: true, country: CountryNetherlands, lat: 51.70,
	},
	// Belgium
	Ghent: {
		low:   []Location{Antwerp, Brussels, Calais},
		event: true, country: CountryBelgium, lat: 51.05,
	},
	Antwerp: {
		low:     []Location{TheHague, SHertogenbosch, Brussels, Ghent},
		coastal: true, country: CountryBelgium, lat: 51.22,
	},
	Brussels: {
		low:     []Location{Antwerp, Cologne, Luxembourg, Paris, Ghent},
		high:    []Location{Amsterdam, Frankfurt, Paris},
		country: CountryBelgium, lat: 50.85,
	},
	// Luxembourg
	Luxembourg: {
		low:     []Location{Brussels, Frankfurt, Nancy, CharlevilleMezieres},
		country: CountryLuxembourg, lat: 49.61,
	},
	// Germany
	Kiel: {
		low:     []Location{Esbjerg, Copenhagen, Hamburg},
		coastal: true, country: CountryGermany, lat: 54.32,
	},
	Bremen: {
		low:     []Location{Groningen, Hamburg, Bielefeld},
		country: CountryGermany, lat: 53.08,
	},
	Hamburg: {
		low:     []Location{Kiel, Rostock, Magdeburg, Bremen},
		high:    []Location{Copenhagen, Rostock, Frankfurt, Amsterdam},
		coastal: true, country: CountryGermany, lat: 53.55,
	},
	Rostock: {
		low:     []Location{Copenhagen, Berlin, Hamburg},
		high:    []Location{Berlin, Hamburg},
		coastal: true, country: CountryGermany, lat: 54.09,
	},
	Bielefeld: {
		low:   []Location{Bremen, Magdeburg, Kassel, Cologne},
		event: true, country: CountryGermany, lat: 52.02,
	},
	Magdeburg: {
		low:  []Location{Hamburg, Berlin, Erfurt, Bielefeld},
		coin: true, country: CountryGermany, lat: 52.13,
	},
	Berlin: {
		low:     []Location{Rostock, Szczecin, Poznan, Dresden, Magdeburg},
		high:    []Location{Rostock, Poznan, Dresden, Frankfurt},
		plane:   []Location{Vienna, Paris, London},
		country: CountryGermany, lat: 52.52,
	},
	Cologne: {
		low:     []Location{Bielefeld, Frankfurt, Brussels},
		country: CountryGermany, lat: 50.94,
	},
	Kassel: {
		low:     []Location{Bielefeld, Erfurt, Frankfurt},
		country: CountryGermany, lat: 51.32,
	},
	Erfurt: {
		low:     []Location{Magdeburg, Leipzig, Nuremberg, Frankfurt, Kassel},
		country: CountryGermany, lat: 50.98,
	},
	Leipzig: {
		low:   []Location{Dresden, Erfurt},
		event: true, country: CountryGermany, lat: 51.34,
	},
	Dresden: {
		low:     []Location{Berlin, Prague, Leipzig},
		high:    []Location{Berlin, Munich},
		country: CountryGermany, lat: 51.05,
	},
	Frankfurt: {
		low:     []Location{Kassel, Erfurt, Stuttgart, Nancy, Luxembourg, Cologne},
		high:    []Location{Hamburg, Berlin, Munich, Stuttgart, Strasbourg, Paris, Brussels},
		plane:   []Location{Copenhagen, Zurich, London},
		country: CountryGermany, lat: 50.11,
	},
	Nuremberg: {
		low:     []Location{Erfurt, Pilsen, Munich, Stuttgart},
		country: CountryGermany, lat: 49.45,
	},
	Stuttgart: {
		low:  []Location{Frankfurt, Nuremberg, Munich, Strasbourg},
		high: []Location{Frankfurt, Basel},
		coin: true, country: CountryGermany, lat: 48.78,
	},
	Munich: {
		low:     []Location{Nuremberg, Innsbruck, Stuttgart},
		high:    []Location{Dresden, Prague, Vienna, Frankfurt},
		country: CountryGermany, lat: 48.14,
	},
	// Switzerland
	Basel: {
		low:     []Location{Strasbourg, Zurich, Merlischachen, Dijon},
		high:    []Location{Stuttgart, Milan, Lyon},
		country: CountrySwitzerland, lat: 47.56,
	},
	Zurich: {
		low:     []Location{Innsbruck, Merlischachen, Basel, Milan},
		plane:   []Location{Frankfurt, Rome, Paris},
		country: CountrySwitzerland, lat: 47.37,
	},
	Merlischachen: {
		low:  []Location{Zurich, Basel},
		coin: true, country: CountrySwitzerland, lat: 47.07,
	},
	Geneva: {
		low:  []Location{Lyon, Grenoble},
		coin: true, country: CountrySwitzerland, lat: 46.20,
	},
	// Austria
	Innsbruck: {
		low:     []Location{Munich, Salzburg, Bolzano, Zurich},
		high:    []Location{Vienna, Venice},
		country: CountryAustria, lat: 47.27,
	},
	Salzburg: {
		low:     []Location{Linz, Villach, Innsbruck},
		country: CountryAustria, lat: 47.81,
	},
	Linz: {
		low:     []Location{CeskeBudejovice, Vienna, Salzburg},
		country: CountryAustria, lat: 48.31,
	},
	Vienna: {
		low:     []Location{Brno, Sopron, Linz},
		high:    []Location{Innsbruck, Munich},
		plane:   []Location{Berlin, Copenhagen, Rome},
		country: CountryAustria, lat: 48.21,
	},
	Villach: {
		low:     []Location{Salzburg, Graz, Ljubljana, Venice},
		country: CountryAustria, lat: 46.61,
	},
	Graz: {
		low:  []Location{Sopron, Villach},
		coin: true, country: CountryAustria, lat: 47.07,
	},
	// Italy
	Bolzano: {
		low:     []Location{Innsbruck, Trento},
		country: CountryItaly, lat: 46.50,
	},
	Trento: {
		low:  []Location{Bolzano, Padua},
		coin: true, country: CountryItaly, lat: 46.07,
	},
	Turin: {
		low:     []Location{Milan, Genoa, Grenoble},
		country: CountryItaly, lat: 45.07,
	},
	Milan: {
		low:     []Location{Zurich, Padua, Bologna, Genoa, Turin},
		high:    []Location{Basel, Venice, Rome, Marseille},
		country: CountryItaly, lat: 45.46,
	},
	Padua: {
		low:     []Location{Trento, Venice, Bologna, Milan},
		country: CountryItaly, lat: 45.41,
	},
	Venice: {
		low:     []Location{Villach, Ljubljana, Padua},
		high:    []Location{Milan, Rome, Innsbruck},
		coastal: true, country: CountryItaly, lat: 45.44,
	},
	Genoa: {
		low:     []Location{Milan, Pisa, Nice, Turin},
		coastal: true, country: CountryItaly, lat: 44.41,
	},
	Bologna: {
		low:   []Location{Padua, SanMarino, Florence, Milan},
		event: true, country: CountryItaly, lat: 44.49,
	},
	Pisa: {
		low:  []Location{Florence, Rome, Genoa},
		coin: true, coastal: true, country: CountryItaly, lat: 43.72,
	},
	Florence: {
		low:     []Location{Bologna, SanMarino, Perugia, Pisa},
		country: CountryItaly, lat: 43.77,
	},
	SanMarino: {
		low:     []Location{Bologna, Florence},
		country: CountryItaly, lat: 43.94,
	},
	Perugia: {
		low:     []Location{Florence, Rome},
		country: CountryItaly, lat: 43.11,
	},
	Rome: {
		low:     []Location{Perugia, Pisa},
		high:    []Location{Milan, Venice},
		plane:   []Location{Zurich, Vienna, Madrid},
		country: CountryItaly, lat: 41.90,
	},
	// Poland
	Gdansk: {
		low:  []Location{Szczecin, Bydgoszcz},
		coin: true, coastal: true, country: CountryPoland, lat: 54.35,
	},
	Szczecin: {
		low:   []Location{Gdansk, Bydgoszcz, Poznan, Berlin},
		event: true, coastal: true, country: CountryPoland, lat: 53.43,
	},
	Bydgoszcz: {
		low:     []Location{Gdansk, Poznan, Szczecin},
		country: CountryPoland, lat: 53.12,
	},
	Poznan: {
		low:     []Location{Szczecin, Bydgoszcz, Wroclaw, Berlin},
		high:    []Location{Berlin, Prague},
		country: CountryPoland, lat: 52.41,
	},
	Wroclaw: {
		low:     []Location{Poznan, Ostrava, Liberec},
		country: CountryPoland, lat: 51.11,
	},
	// Czechia
	Pilsen: {
		low:     []Location{Prague, CeskeBudejovice, Nuremberg},
		country: CountryCzechia, lat: 49.74,
	},
	Prague: {
		low:  []Location{Liberec, Brno, Pilsen, Dresden},
		high: []Location{Poznan, Munich},
		coin: true, country: CountryCzechia, lat: 50.08,
	},
	Liberec: {
		low:     []Location{Wroclaw, Prague},
		country: CountryCzechia, lat: 50.77,
	},
	CeskeBudejovice: {
		low:     []Location{Pilsen, Linz},
		country: CountryCzechia, lat: 48.97,
	},
	Brno: {
		low:     []Location{Ostrava, Vienna, Prague},
		country: CountryCzechia, lat: 49.20,
	},
	Ostrava: {
		low:   []Location{Wroclaw, Brno},
		event: true, country: CountryCzechia, lat: 49.82,
	},
	// Hungary
	Sopron: {
		low:     []Location{Vienna, Graz},
		country: CountryHungary, lat: 47.68,
	},
	// Slovenia
	Ljubljana: {
		low:     []Location{Villach, Zagreb, Rijeka, Venice},
		country: CountrySlovenia, lat: 46.06,
	},
	// Croatia
	Rijeka: {
		low:  []Location{Ljubljana, Zagreb, Split},
		coin: true, coastal: true, country: CountryCroatia, lat: 45.33,
	},
	Zagreb: {
		low:   []Location{BanjaLuka, Rijeka, Ljubljana},
		event: true, country: CountryCroatia, lat: 45.81,
	},
	Split: {
		low:     []Location{BanjaLuka, Rijeka},
		coastal: true, country: CountryCroatia, lat: 43.51,
	},
	// Bosnia and Herzegovina
	BanjaLuka: {
		low:     []Location{Zagreb, Split},
		country: CountryBosnia, lat: 44.77,
	},
}
