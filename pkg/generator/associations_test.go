package generator

import (
	"testing"

	"github.com/leonidagapkin/extclassgenerator/internal/jsvalue"
	"github.com/leonidagapkin/extclassgenerator/pkg/model"
)

func TestAssociationNodeVariants(t *testing.T) {
	autoLoad := true

	tests := []struct {
		name string
		rule model.AssociationRule
		want string
	}{
		{
			"hasMany with derived name",
			model.HasManyAssociation("MyApp.model.Order", "userId"),
			`{type:"hasMany",model:"MyApp.model.Order",foreignKey:"userId",name:"orders"}`,
		},
		{
			"hasMany with autoLoad",
			model.AssociationRule{Kind: model.AssociationHasMany, Model: "Order", AutoLoad: &autoLoad},
			`{type:"hasMany",model:"Order",name:"orders",autoLoad:true}`,
		},
		{
			"belongsTo with accessors",
			model.AssociationRule{
				Kind:       model.AssociationBelongsTo,
				Model:      "MyApp.model.Company",
				ForeignKey: "companyId",
				GetterName: "getCompany",
				SetterName: "setCompany",
			},
			`{type:"belongsTo",model:"MyApp.model.Company",foreignKey:"companyId",name:"company",getterName:"getCompany",setterName:"setCompany"}`,
		},
		{
			"hasOne with keys",
			model.AssociationRule{
				Kind:           model.AssociationHasOne,
				Model:          "Profile",
				PrimaryKey:     "id",
				AssociationKey: "profile",
			},
			`{type:"hasOne",model:"Profile",associationKey:"profile",primaryKey:"id",name:"profile"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := associationNode(tt.rule)
			if err != nil {
				t.Fatalf("association node: %v", err)
			}
			if got := (jsvalue.Writer{}).Write(node); got != tt.want {
				t.Fatalf("node mismatch:\n got %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestAssociationNodeErrors(t *testing.T) {
	autoLoad := true

	tests := []struct {
		name string
		rule model.AssociationRule
	}{
		{"unknown kind", model.AssociationRule{Kind: "linkedTo", Model: "X"}},
		{"missing model", model.AssociationRule{Kind: model.AssociationHasMany}},
		{"autoLoad on belongsTo", model.AssociationRule{Kind: model.AssociationBelongsTo, Model: "X", AutoLoad: &autoLoad}},
		{"getter on hasMany", model.AssociationRule{Kind: model.AssociationHasMany, Model: "X", GetterName: "getX"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := associationNode(tt.rule); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSerializeAssociationsPreservesOrder(t *testing.T) {
	rules := []model.AssociationRule{
		model.BelongsToAssociation("Company", "companyId"),
		model.HasManyAssociation("Order", "userId"),
	}
	nodes, err := serializeAssociations(rules)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	got := jsvalue.Writer{}.Write(nodes)
	want := `[{type:"belongsTo",model:"Company",foreignKey:"companyId",name:"company"},` +
		`{type:"hasMany",model:"Order",foreignKey:"userId",name:"orders"}]`
	if got != want {
		t.Fatalf("order mismatch:\n got %s\nwant %s", got, want)
	}
}
