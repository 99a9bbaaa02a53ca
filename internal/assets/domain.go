package assets

type Asset struct {
	Data      []byte
	MediaType string
}
