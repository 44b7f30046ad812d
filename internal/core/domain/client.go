package domain

// Client is a customer directory entry. Sales reference clients by name
// only; there is no foreign key and no cascade on delete.
type Client struct {
	ID        string `json:"id"`
	Name      string `json:"nombre"`
	Phone     string `json:"telefono"`
	Email     string `json:"email"`
	Address   string `json:"direccion"`
	Instagram string `json:"instagram"`
	Notes     string `json:"notas"`

	// CreatedAt is set once at creation and immutable thereafter.
	CreatedAt string `json:"createdAt"`
}

// Clone returns a copy of the client.
func (c *Client) Clone() *Client {
	cp := *c
	return &cp
}

// ClientPatch is a partial update for a Client. CreatedAt has no patch
// field: the creation date can never be overwritten.
type ClientPatch struct {
	Name      *string `json:"nombre,omitempty"`
	Phone     *string `json:"telefono,omitempty"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"direccion,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Notes     *string `json:"notas,omitempty"`
}

// Apply merges the patch onto the client and returns the names of the
// fields that were set.
func (p *ClientPatch) Apply(c *Client) []string {
	var changed []string
	set := func(dst *string, src *string, name string) {
		if src != nil {
			*dst = *src
			changed = append(changed, name)
		}
	}
	set(&c.Name, p.Name, "nombre")
	set(&c.Phone, p.Phone, "telefono")
	set(&c.Email, p.Email, "email")
	set(&c.Address, p.Address, "direccion")
	set(&c.Instagram, p.Instagram, "instagram")
	set(&c.Notes, p.Notes, "notas")
	return changed
}
