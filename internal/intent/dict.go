package intent

// English/Hinglish phrase pairs for the offline translator. Lookups are
// lower-cased, punctuation-stripped phrases; the table is mirrored at
// init so both directions resolve.
var phrasePairs = [][2]string{
	{"hello", "namaste"},
	{"how are you", "aap kaise hain"},
	{"good morning", "shubh prabhaat"},
	{"good night", "shubh ratri"},
	{"thank you", "dhanyavaad"},
	{"water", "paani"},
	{"food", "khaana"},
	{"help", "madad"},
	{"friend", "dost"},
	{"love", "pyaar"},
	{"yes", "haan"},
	{"no", "nahi"},
	{"stop", "ruko"},
	{"go", "jao"},
	{"what is your name", "aapka naam kya hai"},
	{"who are you", "aap kaun hain"},
	{"time", "samay"},
	{"money", "paisa"},
	{"house", "ghar"},
	{"weather", "mausam"},
	{"beautiful", "sundar"},
	{"happy", "khush"},
	{"price", "daam"},
	{"how much", "kitne ka hai"},
	{"brother", "bhai"},
	{"sister", "behen"},
}

var dictionary = make(map[string]string, 2*len(phrasePairs))

func init() {
	for _, p := range phrasePairs {
		dictionary[p[0]] = p[1]
		dictionary[p[1]] = p[0]
	}
}
