package variants

// nicknames maps formal first names to common short forms. The table is
// bidirectional at lookup time: "bill" also yields "william".
var nicknames = map[string][]string{
	"james":       {"jim", "jimmy"},
	"william":     {"bill", "billy", "will"},
	"robert":      {"bob", "bobby", "rob", "robbie"},
	"michael":     {"mike", "mickey"},
	"john":        {"jack", "johnny"},
	"richard":     {"rick", "dick", "richie"},
	"thomas":      {"tom", "tommy"},
	"charles":     {"charlie", "chuck"},
	"christopher": {"chris"},
	"daniel":      {"dan", "danny"},
	"matthew":     {"matt"},
	"anthony":     {"tony"},
	"steven":      {"steve"},
	"andrew":      {"andy", "drew"},
	"joshua":      {"josh"},
	"katherine":   {"kate", "katie", "kathy"},
	"elizabeth":   {"liz", "beth", "eliza"},
	"margaret":    {"maggie", "meg", "peggy"},
	"jennifer":    {"jen", "jenny"},
	"patricia":    {"pat", "patty", "tricia"},
	"susan":       {"sue", "susie"},
	"deborah":     {"deb", "debbie"},
	"alexander":   {"alex"},
	"alexandra":   {"alex", "sandra"},
	"nicholas":    {"nick"},
	"jonathan":    {"jon"},
	"benjamin":    {"ben"},
	"samuel":      {"sam"},
	"edward":      {"ed", "eddie", "ted"},
	"joseph":      {"joe", "joey"},
	"david":       {"dave"},
	"donald":      {"don"},
	"ronald":      {"ron"},
	"kenneth":     {"ken", "kenny"},
	"timothy":     {"tim"},
	"gregory":     {"greg"},
	"frederick":   {"fred", "freddie"},
	"lawrence":    {"larry"},
	"raymond":     {"ray"},
	"peter":       {"pete"},
	"stephen":     {"steve"},
	"abigail":     {"abby"},
	"rebecca":     {"becky"},
	"victoria":    {"vicky", "tori"},
	"christina":   {"chris", "tina"},
	"michelle":    {"shelly"},
	"stephanie":   {"steph"},
	"francisco":   {"paco", "pancho"},
	"guillermo":   {"memo"},
	"jose":        {"pepe"},
	"ignacio":     {"nacho"},
}

// reverseNicknames is built once so short forms resolve to their formal names
var reverseNicknames = func() map[string][]string {
	rev := make(map[string][]string)
	for formal, nicks := range nicknames {
		for _, nick := range nicks {
			rev[nick] = append(rev[nick], formal)
		}
	}
	return rev
}()

// nicknamesFor returns alternate first names in both directions
func nicknamesFor(first string) []string {
	var out []string
	out = append(out, nicknames[first]...)
	out = append(out, reverseNicknames[first]...)
	return out
}
