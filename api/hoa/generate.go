package hoa

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.6 init --dir ../.. --generalInfo internal/hoa/http/router.go --output . --packageName hoa --outputTypes go,json
