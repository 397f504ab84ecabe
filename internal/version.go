package internal

// Version is the current slidedeck version
const Version = "0.3.0"
