package codec

// Version identifies this module's release for diagnostics and benchmark
// reports. It is bumped by hand alongside tagged releases.
const Version = "0.1.0"
