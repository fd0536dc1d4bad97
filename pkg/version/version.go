package version

// Version is injected at build time via -ldflags="-X .../pkg/version.Version=v1.2.3".
var Version = "dev"
