package cmd

type ListTopicsReq struct {
	Track     string `query:"track" json:"track"`
	YearGroup string `query:"year_group" json:"year_group"`
}

type ListTopicsResp struct {
	Response
	Tutor  *Tutor   `json:"tutor"`
	Topics []*Topic `json:"topics"`
}

type ListTracksReq struct{}

type ListTracksResp struct {
	Response
	Tracks []*Track `json:"tracks"`
}

type Topic struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Sections    []string `json:"sections"`
}

type Tutor struct {
	Track       string `json:"track"`
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

type Track struct {
	Track      string   `json:"track"`
	Tutor      *Tutor   `json:"tutor"`
	YearGroups []string `json:"year_groups"`
}
