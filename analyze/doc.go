// Package analyze provides offline spectral inspection of rendered audio:
// magnitude spectra, dominant-frequency detection and band energy. It is
// meant for tests and tooling, not for the real-time render path.
package analyze
