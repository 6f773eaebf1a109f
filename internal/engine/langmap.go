package engine

import "sort"

// scripts maps abstract language codes (the codes the host application speaks)
// to the script identifiers the recognition models are organized by. The Latin
// languages share one model set.
var scripts = map[string]string{
	"en": "en",
	"zh": "ch",
	"ja": "japan",
	"ko": "korean",
	"ru": "cyrillic",
	"ar": "arabic",
	"hi": "devanagari",
	"th": "thai",
	"es": "latin",
	"fr": "latin",
	"de": "latin",
	"it": "latin",
	"pt": "latin",
}

// trainedData maps script identifiers to Tesseract trained-data names.
var trainedData = map[string]string{
	"en":         "eng",
	"ch":         "chi_sim",
	"japan":      "jpn",
	"korean":     "kor",
	"cyrillic":   "script/Cyrillic",
	"arabic":     "script/Arabic",
	"devanagari": "script/Devanagari",
	"thai":       "tha",
	"latin":      "script/Latin",
}

// ResolveScript maps an abstract language code to its script identifier.
// Codes without a table entry resolve to the Latin script.
func ResolveScript(language string) string {
	if script, ok := scripts[language]; ok {
		return script
	}
	return "latin"
}

// trainedDataName returns the Tesseract trained-data name for a script
// identifier produced by ResolveScript.
func trainedDataName(script string) string {
	if name, ok := trainedData[script]; ok {
		return name
	}
	return trainedData["latin"]
}

// SupportedLanguages lists the abstract language codes with a dedicated table
// entry, sorted for stable output.
func SupportedLanguages() []string {
	codes := make([]string, 0, len(scripts))
	for code := range scripts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
