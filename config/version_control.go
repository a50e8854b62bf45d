package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.1.0"

	// Modular tools
	Benchmark     = "v1.1.0"
	DNA_Translate = "v1.0.0"
	Growth_Curves = "v1.0.0"
	Hamming       = "v1.0.0"
	Seq_Generator = "v2.1.0"
	Bio_Example   = "v1.0.0"
	Sanity_check  = "v1.0.1"
)
