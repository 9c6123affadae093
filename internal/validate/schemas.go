package validate

import "strings"

type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate 清洗后校验，返回按字段顺序排列的全部违规
func (p *RegisterPayload) Validate() []string {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))

	var out []string
	if errs := requiredText("name", p.Name); errs != nil {
		out = append(out, errs...)
	} else {
		out = append(out, textBetween("name", p.Name, 2, 100)...)
	}
	if errs := requiredText("email", p.Email); errs != nil {
		out = append(out, errs...)
	} else {
		out = append(out, emailSyntax(p.Email)...)
	}
	if errs := requiredText("password", p.Password); errs != nil {
		out = append(out, errs...)
	} else {
		out = append(out, textBetween("password", p.Password, 8, 128)...)
		out = append(out, passwordClasses(p.Password)...)
	}
	return out
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p *LoginPayload) Validate() []string {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))

	var out []string
	if errs := requiredText("email", p.Email); errs != nil {
		out = append(out, errs...)
	} else {
		out = append(out, emailSyntax(p.Email)...)
	}
	// 登录口令只要求非空，不检查格式
	out = append(out, requiredText("password", p.Password)...)
	return out
}

type BookCreatePayload struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Year        *int   `json:"year"`
	Genre       string `json:"genre"`
}

func (p *BookCreatePayload) Validate() []string {
	var out []string
	if errs := requiredText("title", p.Title); errs != nil {
		out = append(out, errs...)
	} else {
		out = append(out, textMax("title", p.Title, 255)...)
	}
	if errs := requiredText("author", p.Author); errs != nil {
		out = append(out, errs...)
	} else {
		out = append(out, textMax("author", p.Author, 255)...)
	}
	out = append(out, textMax("description", p.Description, 2000)...)
	if p.Year != nil {
		out = append(out, yearRange(*p.Year)...)
	}
	out = append(out, textMax("genre", p.Genre, 100)...)
	return out
}

type BookUpdatePayload struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Description *string `json:"description"`
	Year        *int    `json:"year"`
	Genre       *string `json:"genre"`
}

func (p *BookUpdatePayload) Validate() []string {
	if p.Title == nil && p.Author == nil && p.Description == nil && p.Year == nil && p.Genre == nil {
		return []string{"at least one field required"}
	}

	var out []string
	if p.Title != nil {
		if errs := requiredText("title", *p.Title); errs != nil {
			out = append(out, errs...)
		} else {
			out = append(out, textMax("title", *p.Title, 255)...)
		}
	}
	if p.Author != nil {
		if errs := requiredText("author", *p.Author); errs != nil {
			out = append(out, errs...)
		} else {
			out = append(out, textMax("author", *p.Author, 255)...)
		}
	}
	if p.Description != nil {
		out = append(out, textMax("description", *p.Description, 2000)...)
	}
	if p.Year != nil {
		out = append(out, yearRange(*p.Year)...)
	}
	if p.Genre != nil {
		out = append(out, textMax("genre", *p.Genre, 100)...)
	}
	return out
}
