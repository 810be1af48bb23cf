// Package steady summarises the settled portion of a gammatone response.
//
// After the filter's start-up transient the envelope of a steady input is
// flat and the instantaneous frequency sits on the dominant component near
// the centre frequency. [Analyze] reports mean and spread of both over the
// samples from a given index on; [AnalyzeSettled] picks that index from the
// filter's settling time.
package steady
