package yada

// Version is the yada release version.
const Version = "0.3.0"
