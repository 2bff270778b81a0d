// Package services implements the driving port interfaces.
//
// MindMapService runs the prompt pipeline: classification, analysis by
// the structure generator, and layout into a graph. SettingsService reads
// and writes the configuration behind it.
package services
