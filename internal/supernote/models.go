package supernote

import (
	"bytes"
	"encoding/json"
)

// ID is a file or folder id. The API emits ids as JSON strings or numbers
// depending on the endpoint; both decode to the same ID.
type ID string

func (id ID) MarshalJSON() ([]byte, error) {
	if id != "" && isDigits(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// File is one entry of a folder listing.
type File struct {
	ID          ID     `json:"id"`
	DirectoryID ID     `json:"directoryId"`
	FileName    string `json:"fileName"`
	Size        int64  `json:"size"`
	MD5         string `json:"md5"`
	IsFolder    string `json:"isFolder"`
}

// Folder reports whether the entry is a folder ("Y" in the API).
func (f File) Folder() bool {
	return f.IsFolder == "Y"
}

type envelope struct {
	Success   bool   `json:"success"`
	ErrorCode string `json:"errorCode"`
	ErrorMsg  string `json:"errorMsg"`
}

type randomCodeRequest struct {
	CountryCode int    `json:"countryCode"`
	Account     string `json:"account"`
}

type randomCodeResponse struct {
	RandomCode string `json:"randomCode"`
	Timestamp  int64  `json:"timestamp"`
}

type loginRequest struct {
	CountryCode int    `json:"countryCode"`
	Account     string `json:"account"`
	Password    string `json:"password"`
	Browser     string `json:"browser"`
	Equipment   string `json:"equipment"`
	LoginMethod string `json:"loginMethod"`
	Timestamp   int64  `json:"timestamp"`
	Language    string `json:"language"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type listRequest struct {
	DirectoryID ID     `json:"directoryId"`
	PageNo      int    `json:"pageNo"`
	PageSize    int    `json:"pageSize"`
	Order       string `json:"order"`
	Sequence    string `json:"sequence"`
}

type listResponse struct {
	Total    int    `json:"total"`
	Pages    int    `json:"pages"`
	FileList []File `json:"userFileVOList"`
}

type uploadApplyRequest struct {
	DirectoryID ID     `json:"directoryId"`
	FileName    string `json:"fileName"`
	MD5         string `json:"md5"`
	Size        int    `json:"size"`
}

type uploadApplyResponse struct {
	URL             string `json:"url"`
	S3Authorization string `json:"s3Authorization"`
	XAmzDate        string `json:"xamzDate"`
	InnerName       string `json:"innerName"`
}

type uploadFinishRequest struct {
	DirectoryID ID     `json:"directoryId"`
	FileName    string `json:"fileName"`
	FileSize    int    `json:"fileSize"`
	InnerName   string `json:"innerName"`
	MD5         string `json:"md5"`
}
