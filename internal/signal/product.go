package signal

import "strings"

// strongNeedSignals always mark a keyword as a need, regardless of any
// product indicators it also contains.
var strongNeedSignals = []string{
	"struggling with", "how to fix", "how to solve", "how to create",
	"how to make", "how to write", "how to build", "how to learn",
	"how to start", "tips for", "best way to", "tutorial for",
	"help me fix", "help me create", "anyone know how",
	"does anyone know", "why is my", "why does my",
	"how long does", "is it worth", "difference between",
	"pros and cons", "step by step", "advanced strategies",
}

// productRoots are tool names; a short phrase built around one is a product
// query, not a problem statement.
var productRoots = []string{
	"generator", "calculator", "converter", "maker", "creator",
	"builder", "formatter", "validator", "checker", "parser",
}

// productIndicators are the broader set of product and format words used for
// the multi-word density check.
var productIndicators = []string{
	"calculator", "converter", "generator", "editor", "tool", "maker",
	"creator", "builder", "parser", "formatter", "validator", "checker",
	"finder", "searcher", "extractor", "downloader", "uploader",
	"compressor", "resizer", "cropper", "merger", "splitter",
	"app", "software", "platform", "service", "website", "online tool",
	"free tool", "best tool", "top tool",
	"pdf", "excel", "word", "image", "video", "audio", "text",
	"barcode", "qr code", "password", "email", "link", "url",
	"to pdf", "to excel", "to jpg", "to png", "to mp3", "to mp4",
}

// IsProductKeyword reports whether a keyword names a product rather than a
// need. The hunt pipeline drops product keywords before scoring: a phrase
// like "pdf converter" is someone naming a tool, not describing a problem.
func IsProductKeyword(keyword string) bool {
	lower := strings.ToLower(keyword)
	wordCount := len(strings.Fields(keyword))

	for _, sig := range strongNeedSignals {
		if strings.Contains(lower, sig) {
			return false
		}
	}

	if wordCount <= 2 {
		for _, root := range productRoots {
			if strings.Contains(lower, root) {
				return true
			}
		}
		return false
	}

	productCount := 0
	for _, ind := range productIndicators {
		if strings.Contains(lower, ind) {
			productCount++
		}
	}
	return productCount >= 2
}
