package blockwalk

// Version is the library release, set at build time for tagged builds.
var Version = "0.3.0"
