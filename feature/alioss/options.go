package alioss

import (
	"net/textproto"
	"strings"

	"ossdisk/core/filesystem"
	"ossdisk/core/utils"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

// OSS request option names, in canonical header form. Option maps are keyed by canonical
// names only, see optionKey.
const (
	OptionContentType        = "Content-Type"
	OptionContentLength      = "Content-Length"
	OptionObjectACL          = "X-Oss-Object-Acl"
	OptionCacheControl       = "Cache-Control"
	OptionContentDisposition = "Content-Disposition"
	OptionContentEncoding    = "Content-Encoding"
	OptionExpires            = "Expires"
	OptionStorageClass       = "X-Oss-Storage-Class"
	optionMetaPrefix         = "X-Oss-Meta-"
)

// optionKey canonicalises a vendor option name. Config files deliver them lowercased.
func optionKey(name string) string {
	return textproto.CanonicalMIMEHeaderKey(strings.TrimSpace(name))
}

// canonicalOptions copies a vendor option bag with canonical keys.
func canonicalOptions(in map[string]string) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[optionKey(k)] = v
	}
	return out
}

// mappingOptions translates generic config keys to OSS request options.
var mappingOptions = map[string]string{
	filesystem.OptionMimetype: OptionContentType,
	filesystem.OptionSize:     OptionContentLength,
	filesystem.OptionACL:      OptionObjectACL,
}

// visibilityToACL maps a generic visibility to the object ACL OSS understands.
func visibilityToACL(v filesystem.Visibility) oss.ObjectACLType {
	if v == filesystem.VisibilityPublic {
		return oss.ObjectACLPublicRead
	}
	return oss.ObjectACLPrivate
}

// aclToVisibility maps an object ACL back to a generic visibility.
func aclToVisibility(acl string) filesystem.Visibility {
	switch oss.ObjectACLType(acl) {
	case oss.ObjectACLPublicRead, oss.ObjectACLPublicReadWrite:
		return filesystem.VisibilityPublic
	default:
		return filesystem.VisibilityPrivate
	}
}

// optionsFromConfig seeds the adapter defaults and overlays the mapped generic options.
func (a *Adapter) optionsFromConfig(cfg *filesystem.Config) map[string]any {
	options := make(map[string]any, len(a.options)+len(mappingOptions))
	for k, v := range a.options {
		options[optionKey(k)] = v
	}
	if cfg == nil {
		return options
	}
	if v, ok := cfg.Get(filesystem.OptionVisibility); ok {
		options[OptionObjectACL] = string(visibilityToACL(filesystem.Visibility(utils.ToString(v))))
	}
	for option, ossOption := range mappingOptions {
		if v, ok := cfg.Get(option); ok {
			options[ossOption] = v
		}
	}
	return options
}

// putRequest lowers an OSS option map to a PutObjectRequest.
func (a *Adapter) putRequest(key string, options map[string]any) *oss.PutObjectRequest {
	req := &oss.PutObjectRequest{
		Bucket: oss.Ptr(a.bucket),
		Key:    oss.Ptr(key),
	}
	for name, value := range options {
		s := utils.ToString(value)
		switch key := optionKey(name); key {
		case OptionContentType:
			req.ContentType = oss.Ptr(s)
		case OptionContentLength:
			req.ContentLength = oss.Ptr(utils.ToInt64(value))
		case OptionObjectACL:
			req.Acl = oss.ObjectACLType(s)
		case OptionCacheControl:
			req.CacheControl = oss.Ptr(s)
		case OptionContentDisposition:
			req.ContentDisposition = oss.Ptr(s)
		case OptionContentEncoding:
			req.ContentEncoding = oss.Ptr(s)
		case OptionExpires:
			req.Expires = oss.Ptr(s)
		case OptionStorageClass:
			req.StorageClass = oss.StorageClassType(s)
		default:
			if len(key) > len(optionMetaPrefix) && strings.HasPrefix(key, optionMetaPrefix) {
				if req.Metadata == nil {
					req.Metadata = make(map[string]string)
				}
				req.Metadata[strings.ToLower(key[len(optionMetaPrefix):])] = s
			}
		}
	}
	return req
}
