// Package proto holds the bankcards gRPC API generated from bankcards.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative bankcards.proto
