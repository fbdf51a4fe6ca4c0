// Package media stores card images on an afero filesystem and serves them
// over HTTP. Uploads are sniffed with mimetype; only raster image formats
// are accepted.
package media
