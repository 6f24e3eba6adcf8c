// Package inventory holds the static host inventory consumed by the
// configuration-management tooling. The data is a fixed nested
// mapping; nothing here talks to the network or the database.
package inventory

// Group is a named set of hosts with shared variables.
type Group struct {
	Hosts []string       `json:"hosts"`
	Vars  map[string]any `json:"vars"`
}

// Meta carries per-host variables under the _meta key.
type Meta struct {
	HostVars map[string]map[string]any `json:"hostvars"`
}

// Inventory is the full group/host mapping in the dynamic-inventory
// JSON shape (--list output).
type Inventory struct {
	DB         Group `json:"db"`
	Web        Group `json:"web"`
	Staging    Group `json:"staging"`
	Production Group `json:"production"`
	Meta       Meta  `json:"_meta"`
}

// Static returns the inventory. The content is fixed by deployment
// convention; roles and addresses change only with the fleet itself.
func Static() Inventory {
	return Inventory{
		DB: Group{
			Hosts: []string{"db-staging", "db-prod-1", "db-prod-2"},
			Vars: map[string]any{
				"server_role":        "database",
				"postgresql_version": "15",
				"monitoring_enabled": true,
			},
		},
		Web: Group{
			Hosts: []string{"web-staging", "web-prod-1", "web-prod-2"},
			Vars: map[string]any{
				"server_role":   "web",
				"nginx_enabled": true,
				"ssl_enabled":   true,
			},
		},
		Staging: Group{
			Hosts: []string{"db-staging", "web-staging"},
			Vars: map[string]any{
				"environment": "staging",
				"debug_mode":  true,
			},
		},
		Production: Group{
			Hosts: []string{"db-prod-1", "db-prod-2", "web-prod-1", "web-prod-2"},
			Vars: map[string]any{
				"environment": "production",
				"debug_mode":  false,
			},
		},
		Meta: Meta{
			HostVars: map[string]map[string]any{
				"db-staging": {
					"ansible_host":                 "10.0.1.101",
					"ansible_user":                 "ubuntu",
					"ansible_ssh_private_key_file": "~/.ssh/staging-key.pem",
					"server_role":                  "database",
					"environment":                  "staging",
				},
				"db-prod-1": {
					"ansible_host":                 "10.0.2.102",
					"ansible_user":                 "ubuntu",
					"ansible_ssh_private_key_file": "~/.ssh/prod-key.pem",
					"server_role":                  "database",
					"environment":                  "production",
				},
				"db-prod-2": {
					"ansible_host":                 "10.0.2.103",
					"ansible_user":                 "ubuntu",
					"ansible_ssh_private_key_file": "~/.ssh/prod-key.pem",
					"server_role":                  "database",
					"environment":                  "production",
				},
				"web-staging": {
					"ansible_host":                 "10.0.1.100",
					"ansible_user":                 "ubuntu",
					"ansible_ssh_private_key_file": "~/.ssh/staging-key.pem",
					"server_role":                  "web",
					"environment":                  "staging",
				},
				"web-prod-1": {
					"ansible_host":                 "10.0.2.100",
					"ansible_user":                 "ubuntu",
					"ansible_ssh_private_key_file": "~/.ssh/prod-key.pem",
					"server_role":                  "web",
					"environment":                  "production",
				},
				"web-prod-2": {
					"ansible_host":                 "10.0.2.101",
					"ansible_user":                 "ubuntu",
					"ansible_ssh_private_key_file": "~/.ssh/prod-key.pem",
					"server_role":                  "web",
					"environment":                  "production",
				},
			},
		},
	}
}

// HostVars returns the variables for one host, or an empty map when
// the host is unknown.
func HostVars(host string) map[string]any {
	if vars, ok := Static().Meta.HostVars[host]; ok {
		return vars
	}
	return map[string]any{}
}
