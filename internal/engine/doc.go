// Package engine wraps the OCR capability behind a small interface and caches
// configured instances.
//
// An Engine is one configured recognition instance, bound to a script
// identifier and an acceleration mode. Construction is expensive (trained
// model loading), so the Cache keeps at most one instance per
// (script, acceleration) pair for the lifetime of the process and never
// evicts.
//
// The concrete backend is Tesseract via gosseract. Accelerated mode selects
// the fast integer-LSTM trained-data set when it is installed; the standard
// set is used otherwise. Callers treat any accelerated construction failure
// as grounds for one retry without acceleration.
//
// Abstract language codes ("en", "zh", "ja", ...) are resolved to script
// identifiers by ResolveScript; codes outside the table fall back to the
// Latin script.
package engine
