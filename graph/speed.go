package graph

// speedTable maps an OSM highway class to its nominal speed in km/h. Any
// class absent from this table is not routable: the way it appears on is
// dropped entirely rather than added to the graph.
var speedTable = map[string]int{
	"motorway":          110,
	"trunk":             110,
	"primary":           70,
	"secondary":         60,
	"tertiary":          50,
	"motorway_link":     50,
	"trunk_link":        50,
	"primary_link":      50,
	"secondary_link":    50,
	"road":              40,
	"unclassified":      40,
	"residential":       30,
	"unsurfaced":        30,
	"living_street":     10,
	"service":           5,
}

// HighwaySpeed returns the nominal speed in km/h for an OSM highway class,
// and whether the class is routable at all.
func HighwaySpeed(highwayClass string) (kmh int, ok bool) {
	kmh, ok = speedTable[highwayClass]
	return kmh, ok
}
