package docs

// WebURL returns the browser edit URL for a Google Doc.
// Used as a fallback when the Drive listing did not include a
// webViewLink.
func WebURL(documentID string) string {
	if documentID == "" {
		return ""
	}
	return "https://docs.google.com/document/d/" + documentID + "/edit"
}
