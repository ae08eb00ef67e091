package dto

type (
	// LessonStartReq 开始上课请求, 连接建立后的第一帧
	LessonStartReq struct {
		// 开始的时间戳
		Timestamp int64 `json:"timestamp"`
		// 使用者标记
		From        string `json:"from"`
		StudentId   string `json:"student_id"`
		StudentName string `json:"student_name"`
		// 学科, 为空时为 maths
		Track     string `json:"track"`
		YearGroup string `json:"year_group"`
		// ResumeSessionId 断线重连时携带上一次的会话id
		ResumeSessionId string `json:"resume_session_id,omitempty"`
	}

	// LessonReq 课堂指令
	LessonReq struct {
		// 命令, 0发言, 1心跳, 2选择课题, 3切换阶段, 4附件, -1结束
		Cmd      int64  `json:"cmd"`
		Msg      string `json:"msg,omitempty"`
		TopicId  string `json:"topic_id,omitempty"`
		Phase    string `json:"phase,omitempty"`
		FileName string `json:"file_name,omitempty"`
	}

	// LessonFrame 服务端推送, Type 为 state|message|speaking|end
	LessonFrame struct {
		Type     string       `json:"type"`
		State    *SessionView `json:"state,omitempty"`
		Message  *MessageView `json:"message,omitempty"`
		Speaking *bool        `json:"speaking,omitempty"`
		Code     int          `json:"code,omitempty"`
		Msg      string       `json:"msg,omitempty"`
	}

	// SessionView 客户端渲染所需的会话状态
	SessionView struct {
		SessionId     string         `json:"session_id"`
		StudentName   string         `json:"student_name"`
		Track         string         `json:"track"`
		YearGroup     string         `json:"year_group"`
		Topic         *TopicView     `json:"topic,omitempty"`
		Tutor         *TutorView     `json:"tutor,omitempty"`
		Phase         string         `json:"phase"`
		Step          int            `json:"step"`
		Section       int            `json:"section"`
		SectionCount  int            `json:"section_count"`
		Board         string         `json:"board"`
		Understanding string         `json:"understanding"`
		Busy          bool           `json:"busy"`
		Speaking      bool           `json:"speaking"`
		Voice         *VoiceView     `json:"voice,omitempty"`
		Transcript    []*MessageView `json:"transcript,omitempty"`
	}

	MessageView struct {
		Id         string `json:"id"`
		Role       string `json:"role"`
		Text       string `json:"text"`
		Attachment string `json:"attachment,omitempty"`
		Timestamp  int64  `json:"timestamp"`
	}

	TopicView struct {
		Id          string   `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Sections    []string `json:"sections"`
	}

	TutorView struct {
		Track       string `json:"track"`
		Name        string `json:"name"`
		Subject     string `json:"subject"`
		Description string `json:"description"`
	}

	// VoiceView 浏览器本地朗读时使用的音色
	VoiceView struct {
		Family string   `json:"family"`
		Voices []string `json:"voices"`
		Rate   float64  `json:"rate"`
		Pitch  float64  `json:"pitch"`
	}
)
