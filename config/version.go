package config

const Version = "0.1.0"
