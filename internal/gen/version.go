package gen

// Version of swag2ts.
const Version = "v0.1.0"
