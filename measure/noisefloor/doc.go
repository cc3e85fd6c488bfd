// Package noisefloor estimates the noise floor of a sensing apparatus
// from a recovered pure-noise run and suggests a threshold for the
// sub-threshold denoiser.
//
// The intended workflow: record the apparatus with no injected signal,
// run GZT recovery on that recording, and hand the recovered sequence to
// [Analyzer.Analyze]. The resulting SuggestedThreshold is the value to
// pass to gzt.WithThreshold for subsequent recovery runs.
package noisefloor
