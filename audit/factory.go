package audit

import (
	mysqlwriter "github.com/czcorpus/tn-wfst/audit/mysql"
	sqlitewriter "github.com/czcorpus/tn-wfst/audit/sqlite"
)

// DBConf configures the audit backend, grounded on db.Conf's
// Type/Name/Host/User/Password shape.
type DBConf struct {
	Type     string `json:"type"`
	Path     string `json:"path,omitempty"`
	Host     string `json:"host,omitempty"`
	Name     string `json:"name,omitempty"`
	User     string `json:"user,omitempty"`
	Password string `json:"password,omitempty"`
}

// NewWriter resolves a Writer from conf, grounded on
// db/factory.NewDatabaseWriter's switch-on-DBType pattern. An
// unrecognized or empty conf.Type yields a NullWriter.
func NewWriter(conf DBConf) Writer {
	switch conf.Type {
	case "sqlite":
		return &sqlitewriter.Writer{Path: conf.Path}
	case "mysql":
		return &mysqlwriter.Writer{Conf: mysqlwriter.Config{
			Host:     conf.Host,
			User:     conf.User,
			Password: conf.Password,
			DBName:   conf.Name,
		}}
	default:
		return &NullWriter{}
	}
}
