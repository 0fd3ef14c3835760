package data

import (
	"path"
	"strings"
)

// ContentType is a MIME type attached to uploaded blobs.
type ContentType string

const (
	ContentTypeTextPlain         ContentType = "text/plain"
	ContentTypeTextHTML          ContentType = "text/html"
	ContentTypeTextCSS           ContentType = "text/css"
	ContentTypeTextCSV           ContentType = "text/csv"
	ContentTypeImageJPEG         ContentType = "image/jpeg"
	ContentTypeImagePNG          ContentType = "image/png"
	ContentTypeImageGIF          ContentType = "image/gif"
	ContentTypeImageSVGXML       ContentType = "image/svg+xml"
	ContentTypeApplicationPDF    ContentType = "application/pdf"
	ContentTypeApplicationZip    ContentType = "application/zip"
	ContentTypeApplicationGZip   ContentType = "application/gzip"
	ContentTypeApplicationJSON   ContentType = "application/json"
	ContentTypeApplicationXML    ContentType = "application/xml"
	ContentTypeApplicationStream ContentType = "application/octet-stream"
)

var extensionToMIME = map[string]ContentType{
	".txt":  ContentTypeTextPlain,
	".md":   ContentTypeTextPlain,
	".log":  ContentTypeTextPlain,
	".html": ContentTypeTextHTML,
	".css":  ContentTypeTextCSS,
	".csv":  ContentTypeTextCSV,
	".jpg":  ContentTypeImageJPEG,
	".jpeg": ContentTypeImageJPEG,
	".png":  ContentTypeImagePNG,
	".gif":  ContentTypeImageGIF,
	".svg":  ContentTypeImageSVGXML,
	".pdf":  ContentTypeApplicationPDF,
	".zip":  ContentTypeApplicationZip,
	".gz":   ContentTypeApplicationGZip,
	".json": ContentTypeApplicationJSON,
	".xml":  ContentTypeApplicationXML,
}

// DetectContentType maps a blob key to a MIME type by extension. Unknown
// extensions fall back to the generic byte stream type.
func DetectContentType(key string) ContentType {
	ext := strings.ToLower(path.Ext(key))
	if mime, ok := extensionToMIME[ext]; ok {
		return mime
	}

	return ContentTypeApplicationStream
}
