// Package main AgroStore storefront API
//
//	@title			AgroStore API
//	@version		1.0.0
//	@description	Storefront and back office API for an agricultural supplies shop
//
//	@contact.name	API Support
//	@contact.email	support@vigyat.in
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host			localhost:3000
//	@BasePath		/api/v1
//
//	@securityDefinitions.apikey	AdminCookie
//	@in							cookie
//	@name						admin-auth
package main

import "github.com/vigyat/agrostore/internal"

//go:generate swag init --parseDependency --outputTypes go -g ./main.go -o ./internal/server/docs

func main() {
	internal.Run()
}
