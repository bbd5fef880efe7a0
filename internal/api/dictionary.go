package api

// DictionaryEntry is one row of the served dictionary.
type DictionaryEntry struct {
	Locale string `json:"locale"`
	MsgID  string `json:"msgid"`
	MsgStr string `json:"msgstr"`
}

// DictionaryResponse is the body of the embedded dictionary endpoint.
type DictionaryResponse struct {
	Data []DictionaryEntry `json:"data"`
}
