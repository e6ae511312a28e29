package main

// General API documentation for swaggo. Build with -tags swagger to serve it.
//
// @title           emotiond API
// @version         1.0
// @description     HTTP API for multi-label emotion analysis of text.
//
// @contact.name   emotiond maintainers
// @contact.url    https://github.com/your-org/emotiond
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
